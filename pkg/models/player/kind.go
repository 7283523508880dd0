package player

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
)

var kindAlias = map[string]chess.Kind{
	"human":  chess.Human,
	"h":      chess.Human,
	"player": chess.Human,
	"off":    chess.Human,
	"0":      chess.Human,

	"automated": chess.Automated,
	"a":         chess.Automated,
	"ai":        chess.Automated,
	"computer":  chess.Automated,
	"on":        chess.Automated,
	"1":         chess.Automated,
}

// ParseKind reads a player kind as written on the command line or in a config file.
func ParseKind(s string) (chess.Kind, error) {
	if k, ok := kindAlias[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("player %q: %w", s, chess.ErrUnknownKind)
}
