package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedMatch(t *testing.T) *chess.Match {
	t.Helper()
	m, err := chess.NewMatch(2, 2, chess.Human, chess.Automated, nil)
	require.NoError(t, err)
	for _, e := range []chess.Edge{
		chess.NewEdge(0, 0, chess.Horizontal),
		chess.NewEdge(0, 0, chess.Vertical),
		chess.NewEdge(0, 1, chess.Vertical),
		chess.NewEdge(1, 0, chess.Horizontal),
	} {
		_, err = m.PlayMove(e)
		require.NoError(t, err)
	}
	return m
}

func emptyMatch(t *testing.T) *chess.Match {
	t.Helper()
	m, err := chess.NewMatch(2, 2, chess.Human, chess.Human, nil)
	require.NoError(t, err)
	return m
}

func assertSameMatch(t *testing.T, want, got *chess.Match) {
	t.Helper()
	assert.Equal(t, want.Current(), got.Current())
	assert.Equal(t, want.Player(chess.Blue).Kind(), got.Player(chess.Blue).Kind())
	assert.Equal(t, want.Grid().Lines(), got.Grid().Lines())
	assert.Equal(t, want.Grid().Cells(), got.Grid().Cells())
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "saves"))
	want := playedMatch(t)

	require.NoError(t, s.Save(ctx, "one", want))
	data, err := os.ReadFile(s.Path("one"))
	require.NoError(t, err)
	assert.Equal(t, "blue\nHuman\nAutomated\n0,0,H\n0,0,V\n0,1,V\n1,0,H\n0,0,blue\n", string(data))

	got := emptyMatch(t)
	require.NoError(t, s.Load(ctx, "one", got))
	assertSameMatch(t, want, got)

	entries, err := os.ReadDir(s.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestFileStoreMissingSlot(t *testing.T) {
	s := NewFileStore(t.TempDir())
	err := s.Load(context.Background(), "nope", emptyMatch(t))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestFileStoreMalformedSave(t *testing.T) {
	s := NewFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(s.Path(message.DefaultSaveSlot), []byte("purple\n"), 0o644))

	m := playedMatch(t)
	err := s.Load(context.Background(), message.DefaultSaveSlot, m)
	assert.ErrorIs(t, err, chess.ErrMalformedSave)
	assert.Equal(t, chess.Blue, m.Current())
}

type fakeKV struct {
	values  map[string]string
	seconds int
	err     error
}

func (f *fakeKV) GetCtx(_ context.Context, key string) (string, error) {
	return f.values[key], f.err
}

func (f *fakeKV) SetexCtx(_ context.Context, key, value string, seconds int) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	f.seconds = seconds
	return nil
}

type countingLock struct {
	held int
}

func (l *countingLock) Do(_ context.Context, f func() error) error {
	l.held++
	return f()
}

func newFakeRedisStore() (*RedisStore, *fakeKV, *countingLock) {
	rds := &fakeKV{values: map[string]string{}}
	lock := &countingLock{}
	return &RedisStore{
		rds:    rds,
		lock:   func(message.SaveSlot) locker { return lock },
		Expiry: DefaultExpiry,
	}, rds, lock
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	s, rds, lock := newFakeRedisStore()
	want := playedMatch(t)

	require.NoError(t, s.Save(ctx, "cloud", want))
	assert.Contains(t, rds.values, "pipopipette:save:cloud")
	assert.Equal(t, 7*24*60*60, rds.seconds)

	got := emptyMatch(t)
	require.NoError(t, s.Load(ctx, "cloud", got))
	assertSameMatch(t, want, got)
	assert.Equal(t, 2, lock.held)
}

func TestRedisStoreErrors(t *testing.T) {
	ctx := context.Background()
	s, rds, _ := newFakeRedisStore()

	assert.ErrorIs(t, s.Load(ctx, "missing", emptyMatch(t)), ErrSlotNotFound)

	boom := errors.New("connection refused")
	rds.err = boom
	assert.ErrorIs(t, s.Save(ctx, "cloud", playedMatch(t)), boom)
	assert.ErrorIs(t, s.Load(ctx, "cloud", emptyMatch(t)), boom)
}
