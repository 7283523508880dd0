package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetryInterval = time.Second / 5
	lockExpireSeconds = 10
)

var ErrLockNotAcquired = errors.New("lock not acquired")

type locker interface {
	AcquireCtx(ctx context.Context) (bool, error)
	ReleaseCtx(ctx context.Context) (bool, error)
}

// RedisLock serialises access to one save slot across processes.
type RedisLock struct {
	locker
	Retries int
}

func NewLock(rds *redis.Redis, lockName string) *RedisLock {
	l := redis.NewRedisLock(rds, lockName)
	l.SetExpire(lockExpireSeconds)
	return &RedisLock{locker: l, Retries: 25}
}

// Do runs f while holding the lock. The lock is released even when f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	for range l.Retries + 1 {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}
		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	return ErrLockNotAcquired
}

// UnLock releases the lock. A lock that already expired is not an error.
func (l *RedisLock) UnLock(ctx context.Context) error {
	_, err := l.ReleaseCtx(ctx)
	return err
}
