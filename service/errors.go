package service

import (
	"Quorum/dao"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	// ErrConflict 并发写入冲突, 投票场景下按无变化处理
	ErrConflict        = dao.ErrConflict
	ErrUnavailable     = errors.New("storage unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAlreadyMember   = errors.New("already a member")
	ErrNotMember       = errors.New("not a member")
	ErrLastAdmin       = errors.New("last admin cannot leave")
)

var known = []error{
	ErrUnauthenticated, ErrNotFound, ErrConflict, ErrUnavailable, ErrInvalidArgument,
	ErrForbidden, ErrAlreadyExists, ErrAlreadyMember, ErrNotMember, ErrLastAdmin,
}

// storageErr 把 dao 层错误归类, 已归类的错误原样返回
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	for _, e := range known {
		if errors.Is(err, e) {
			return err
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
