package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"github.com/HuXin0817/pipopipette/pkg/models/model"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const DefaultExpiry = 7 * 24 * time.Hour

type kv interface {
	GetCtx(ctx context.Context, key string) (string, error)
	SetexCtx(ctx context.Context, key, value string, seconds int) error
}

type locker interface {
	Do(ctx context.Context, f func() error) error
}

// RedisStore keeps saves in redis with an expiry. Each slot is guarded by its own lock so
// two processes never interleave a save and a load.
type RedisStore struct {
	rds    kv
	lock   func(slot message.SaveSlot) locker
	Expiry time.Duration
}

func NewRedisStore(rds *redis.Redis, expiry time.Duration) *RedisStore {
	return &RedisStore{
		rds: rds,
		lock: func(slot message.SaveSlot) locker {
			return model.NewLock(rds, slot.LockName())
		},
		Expiry: expiry,
	}
}

func (s *RedisStore) Save(ctx context.Context, slot message.SaveSlot, m *chess.Match) error {
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		return err
	}

	return s.lock(slot).Do(ctx, func() error {
		if err := s.rds.SetexCtx(ctx, slot.Key(), buf.String(), int(s.Expiry/time.Second)); err != nil {
			return fmt.Errorf("save %s: %w", slot, err)
		}
		return nil
	})
}

func (s *RedisStore) Load(ctx context.Context, slot message.SaveSlot, m *chess.Match) error {
	var text string
	err := s.lock(slot).Do(ctx, func() (err error) {
		text, err = s.rds.GetCtx(ctx, slot.Key())
		return
	})
	if err != nil {
		return fmt.Errorf("load %s: %w", slot, err)
	}
	if text == "" {
		return fmt.Errorf("%s: %w", slot, ErrSlotNotFound)
	}

	return m.Load(strings.NewReader(text))
}
