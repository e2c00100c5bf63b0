package service

import (
	"Quorum/config"
	"Quorum/dao"
	"Quorum/models"
	"Quorum/pkg/log"
	"Quorum/pkg/metrics"
	"Quorum/pkg/snowflake"
	"Quorum/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxBatchVoteStatus = 100

// VoteRequest 投票动作, WasUpvoted/WasDownvoted 为调用方认为的当前状态
type VoteRequest struct {
	ActorID      uint64
	TargetKind   string
	TargetID     uint64
	Action       string
	WasUpvoted   bool
	WasDownvoted bool
}

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Vote(ctx context.Context, req VoteRequest) (*types.VoteResult, error)
	GetVoteState(ctx context.Context, actorID uint64, kind string, targetID uint64) (VoteState, error)
	BatchGetVoteStates(ctx context.Context, actorID uint64, kind string, targetIDs []uint64) (map[uint64]VoteState, error)
}

type VoteService struct {
	Config      *config.Config
	DB          *gorm.DB
	VoteDAO     *dao.VoteDAO
	UserDAO     *dao.Users
	QuestionDAO *dao.QuestionDAO
	AnswerDAO   *dao.AnswerDAO
	Reputation  IReputationService
}

// Vote 执行一次投票动作
// 投票行与双方声望在同一事务内提交; 并发冲突回滚后按无变化返回
func (s *VoteService) Vote(ctx context.Context, req VoteRequest) (*types.VoteResult, error) {
	if req.ActorID == 0 {
		return nil, ErrUnauthenticated
	}
	if !models.IsTargetKind(req.TargetKind) || req.TargetID == 0 {
		return nil, ErrInvalidArgument
	}
	intended, err := IntendedState(req.Action, req.WasUpvoted, req.WasDownvoted)
	if err != nil {
		return nil, err
	}

	var plan Transition
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorID, err := s.authorOf(ctx, tx, req.TargetKind, req.TargetID)
		if err != nil {
			return err
		}
		exist, err := s.UserDAO.Tx(tx).IsExist(ctx, "id = ?", req.ActorID)
		if err != nil {
			return err
		}
		if !exist {
			return ErrNotFound
		}

		votes := s.VoteDAO.Tx(tx)
		current, err := votes.GetState(ctx, req.ActorID, req.TargetKind, req.TargetID)
		if err != nil {
			return err
		}

		plan = PlanTransition(stateOf(current), intended, s.weights(req.TargetKind), s.Config.Reputation.FlipPolicy)
		switch plan.Write {
		case WriteNone:
			// 重复提交, 已是目标状态
			return nil
		case WriteInsert:
			err = votes.Insert(ctx, req.ActorID, req.TargetKind, req.TargetID, voteTypeOf(plan.To))
		case WriteUpdate:
			err = votes.UpdateType(ctx, req.ActorID, req.TargetKind, req.TargetID, voteTypeOf(plan.From), voteTypeOf(plan.To))
		case WriteDelete:
			err = votes.DeleteIf(ctx, req.ActorID, req.TargetKind, req.TargetID, voteTypeOf(plan.From))
		}
		if err != nil {
			return err
		}

		meta := map[string]any{"transition": plan.Label()}
		return s.Reputation.Apply(ctx, tx, snowflake.GenActionID(),
			Delta{
				UserID:     req.ActorID,
				Amount:     plan.VoterDelta,
				Reason:     models.ReasonVoteCast,
				TargetKind: req.TargetKind,
				TargetID:   req.TargetID,
				Meta:       meta,
			},
			Delta{
				UserID:     authorID,
				Amount:     plan.AuthorDelta,
				Reason:     models.ReasonVoteReceive,
				TargetKind: req.TargetKind,
				TargetID:   req.TargetID,
				Meta:       map[string]any{"transition": plan.Label(), "voter_id": req.ActorID},
			},
		)
	})

	if errors.Is(err, ErrConflict) {
		metrics.VoteConflicts.WithLabelValues(req.TargetKind).Inc()
		log.L.Info("vote conflict, treated as no change",
			zap.Uint64("actor_id", req.ActorID),
			zap.String("target_kind", req.TargetKind),
			zap.Uint64("target_id", req.TargetID),
		)
		state, err := s.GetVoteState(ctx, req.ActorID, req.TargetKind, req.TargetID)
		if err != nil {
			return nil, err
		}
		return &types.VoteResult{State: string(state)}, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}

	if plan.Changed() {
		metrics.VoteTransitions.WithLabelValues(req.TargetKind, plan.Label()).Inc()
	}
	return &types.VoteResult{
		State:       string(plan.To),
		Changed:     plan.Changed(),
		VoterDelta:  plan.VoterDelta,
		AuthorDelta: plan.AuthorDelta,
	}, nil
}

func (s *VoteService) GetVoteState(ctx context.Context, actorID uint64, kind string, targetID uint64) (VoteState, error) {
	if actorID == 0 {
		return "", ErrUnauthenticated
	}
	if !models.IsTargetKind(kind) {
		return "", ErrInvalidArgument
	}
	current, err := s.VoteDAO.GetState(ctx, actorID, kind, targetID)
	if err != nil {
		return "", storageErr(err)
	}
	return stateOf(current), nil
}

// BatchGetVoteStates 列表页一次查询多个内容的投票状态, 未投票的不在结果中
func (s *VoteService) BatchGetVoteStates(ctx context.Context, actorID uint64, kind string, targetIDs []uint64) (map[uint64]VoteState, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}
	if !models.IsTargetKind(kind) || len(targetIDs) > maxBatchVoteStatus {
		return nil, ErrInvalidArgument
	}
	raw, err := s.VoteDAO.BatchGetStates(ctx, actorID, kind, targetIDs)
	if err != nil {
		return nil, storageErr(err)
	}
	states := make(map[uint64]VoteState, len(raw))
	for id, t := range raw {
		states[id] = stateOf(t)
	}
	return states, nil
}

func (s *VoteService) authorOf(ctx context.Context, tx *gorm.DB, kind string, targetID uint64) (uint64, error) {
	if kind == models.TargetQuestion {
		return s.QuestionDAO.Tx(tx).AuthorOf(ctx, targetID)
	}
	return s.AnswerDAO.Tx(tx).AuthorOf(ctx, targetID)
}

func (s *VoteService) weights(kind string) config.VoteWeights {
	if kind == models.TargetQuestion {
		return s.Config.Reputation.Question
	}
	return s.Config.Reputation.Answer
}
