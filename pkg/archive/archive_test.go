package archive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"github.com/HuXin0817/pipopipette/pkg/models/message/moverecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel[T any] struct {
	lock sync.Mutex
	rows []*T
	err  error
}

func (f *fakeModel[T]) Insert(_ context.Context, data *T) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, data)
	return nil
}

func finishedMatch(t *testing.T) *chess.Match {
	t.Helper()
	m, err := chess.NewMatch(1, 1, chess.Automated, chess.Human, nil)
	require.NoError(t, err)
	for _, e := range chess.NewBox(0, 0).Edges() {
		_, err = m.PlayMove(e)
		require.NoError(t, err)
	}
	require.True(t, m.IsOver())
	return m
}

func TestArchiveRecordsStartAndEnd(t *testing.T) {
	starts := &fakeModel[moverecord.GameStartRecode]{}
	ends := &fakeModel[moverecord.GameEndRecode]{}
	a := New(starts, ends, time.Hour)

	uid := message.NewGameUid()
	m := finishedMatch(t)
	a.RecordStart(uid, m)
	a.RecordEnd(uid, m, 4)
	require.NoError(t, a.Close())

	require.Len(t, starts.rows, 1)
	assert.Equal(t, moverecord.GameStartRecode{GameUid: uid, Rows: 1, Cols: 1, Red: "Automated", Blue: "Human"}, *starts.rows[0])

	require.Len(t, ends.rows, 1)
	assert.Equal(t, uid, ends.rows[0].GameUid)
	assert.Equal(t, "blue", ends.rows[0].Winner)
	assert.Equal(t, 1, ends.rows[0].BlueScore)
	assert.Equal(t, 4, ends.rows[0].StepCount)
}

func TestArchiveWritesInBackground(t *testing.T) {
	starts := &fakeModel[moverecord.GameStartRecode]{}
	a := New(starts, &fakeModel[moverecord.GameEndRecode]{}, 5*time.Millisecond)
	defer a.Close()

	a.RecordStart(message.NewGameUid(), finishedMatch(t))
	assert.Eventually(t, func() bool {
		starts.lock.Lock()
		defer starts.lock.Unlock()
		return len(starts.rows) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestArchiveReportsDroppedRecords(t *testing.T) {
	ends := &fakeModel[moverecord.GameEndRecode]{err: errors.New("no mongo")}
	a := New(&fakeModel[moverecord.GameStartRecode]{}, ends, time.Hour)

	a.RecordEnd(message.NewGameUid(), finishedMatch(t), 4)
	assert.Error(t, a.Close())
}
