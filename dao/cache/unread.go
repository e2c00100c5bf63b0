package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 版本号过期时间, 远大于一次回源的耗时即可
const versionExpireAt = 24 * time.Hour

// UnreadStorage 通知未读数缓存
// 缓存只作为读加速, 任何写入都删除 key 并递增版本号, 下次读时回源数据库
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Enabled redis 未配置时所有方法都是空操作
func (u *UnreadStorage) Enabled() bool {
	return u != nil && u.redis != nil
}

// Get 获取未读数, 第二个返回值表示是否命中
func (u *UnreadStorage) Get(ctx context.Context, uid uint64) (int64, bool, error) {
	if !u.Enabled() {
		return 0, false, nil
	}
	n, err := u.redis.Get(ctx, u.name(uid)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// Fill 回源并回填缓存
// 回源期间版本号被修改时 EXEC 失败, 不回填, 返回本次回源的结果
// load 的错误原样返回, 其余为缓存错误
func (u *UnreadStorage) Fill(ctx context.Context, uid uint64, ttl time.Duration, load func() (int64, error)) (int64, error) {
	if !u.Enabled() {
		return load()
	}

	var (
		n       int64
		loadErr error
	)
	err := u.redis.Watch(ctx, func(tx *redis.Tx) error {
		n, loadErr = load()
		if loadErr != nil {
			return loadErr
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, u.name(uid), n, ttl)
			return nil
		})
		return err
	}, u.version(uid))

	if loadErr != nil {
		return 0, loadErr
	}
	if errors.Is(err, redis.TxFailedErr) {
		return n, nil
	}
	return n, err
}

// Del 删除一个或多个用户的未读数, 同时递增版本号使进行中的回填失效
func (u *UnreadStorage) Del(ctx context.Context, uids ...uint64) error {
	if !u.Enabled() || len(uids) == 0 {
		return nil
	}
	pipe := u.redis.Pipeline()
	for _, uid := range uids {
		pipe.Del(ctx, u.name(uid))
		pipe.Incr(ctx, u.version(uid))
		pipe.Expire(ctx, u.version(uid), versionExpireAt)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// notice:unread:{uid}
func (u *UnreadStorage) name(uid uint64) string {
	return fmt.Sprintf("notice:unread:%d", uid)
}

// notice:unread:ver:{uid}
func (u *UnreadStorage) version(uid uint64) string {
	return fmt.Sprintf("notice:unread:ver:%d", uid)
}
