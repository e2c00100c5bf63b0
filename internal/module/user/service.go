package user

import (
	"Quorum/models"
	quorum "Quorum/service"
	"Quorum/types"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Service 用户主页与声望流水, 只读
type Service interface {
	GetProfile(ctx context.Context, id uint64) (*ProfileResponse, error)
	ReputationHistory(ctx context.Context, id uint64, cursor uint64, limit int) (*types.ReputationHistory, error)
}

type service struct {
	repo       Repository
	reputation quorum.IReputationService
}

// NewService 声望流水统一走 IReputationService
func NewService(repo Repository, reputation quorum.IReputationService) Service {
	return &service{repo: repo, reputation: reputation}
}

func (s *service) GetProfile(ctx context.Context, id uint64) (*ProfileResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Picture:    u.Picture,
		Reputation: u.Reputation,
	}, nil
}

func (s *service) ReputationHistory(ctx context.Context, id uint64, cursor uint64, limit int) (*types.ReputationHistory, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	return s.reputation.History(ctx, id, cursor, limit)
}

func (s *service) find(ctx context.Context, id uint64) (*models.Users, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, quorum.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", quorum.ErrUnavailable, err)
	}
	return u, nil
}
