package store

import (
	"context"
	"errors"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
)

var ErrSlotNotFound = errors.New("save slot not found")

// Store keeps saved matches by slot in the text format written by chess.Match.Save.
type Store interface {
	Save(ctx context.Context, slot message.SaveSlot, m *chess.Match) error
	Load(ctx context.Context, slot message.SaveSlot, m *chess.Match) error
}
