package message

import (
	"testing"
	"time"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveInformationMessage(t *testing.T) {
	m := MoveInformationMessage{
		TimeStamp: NewTimeStamp(time.Date(2024, 4, 1, 12, 30, 0, 0, time.UTC)),
		GameUid:   NewGameUid(),
		StepCount: 4,
		Player:    chess.Blue,
		MoveEdge:  chess.NewEdge(1, 0, chess.Horizontal),
		Filled:    []chess.Box{chess.NewBox(0, 0)},
		Score:     chess.Score{Blue: 1},
	}

	s := m.String()
	assert.Contains(t, s, `"MoveEdge":{"Row":1,"Col":0,"Orientation":"H"}`)

	decoded, err := NewMoveInformationMessage(s)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
	assert.True(t, decoded.ExtraTurn())
	assert.Equal(t, 2024, decoded.Time().Year())
}

func TestGameUidIsUnique(t *testing.T) {
	a, b := NewGameUid(), NewGameUid()
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 36)
}

func TestSaveSlot(t *testing.T) {
	s := SaveSlot("weekend")
	assert.Equal(t, "pipopipette:save:weekend", s.Key())
	assert.Equal(t, "pipopipette:save:weekend:lock", s.LockName())
	assert.Equal(t, "weekend.txt", s.FileName())
}
