package message

import (
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// ResultMessage summarises a finished or interrupted game.
type ResultMessage struct {
	TimeStamp
	GameUid
	Rows      int
	Cols      int
	StepCount int
	State     string
	Winner    chess.Color `json:",omitempty"`
	Score     chess.Score
}

func NewResultMessage(str string) (newResultMessage ResultMessage, err error) {
	err = sonic.UnmarshalString(str, &newResultMessage)
	return
}

func (r ResultMessage) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
