package message

import (
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// MoveInformationMessage describes one accepted move.
type MoveInformationMessage struct {
	TimeStamp
	GameUid
	StepCount int
	Player    chess.Color
	MoveEdge  chess.Edge
	Filled    []chess.Box `json:",omitempty"`
	Score     chess.Score
}

func NewMoveInformationMessage(str string) (newMoveInformationMessage MoveInformationMessage, err error) {
	err = sonic.UnmarshalString(str, &newMoveInformationMessage)
	return
}

// ExtraTurn reports whether the mover keeps the turn.
func (m MoveInformationMessage) ExtraTurn() bool {
	return len(m.Filled) > 0
}

func (m MoveInformationMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
