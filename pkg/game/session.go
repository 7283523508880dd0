package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"github.com/HuXin0817/pipopipette/pkg/store"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrGameOver = errors.New("game is over")

// Recorder is told when a game starts and how it ended.
type Recorder interface {
	RecordStart(uid message.GameUid, m *chess.Match)
	RecordEnd(uid message.GameUid, m *chess.Match, steps int)
}

// Outcome is the result of one accepted move.
type Outcome struct {
	Move   message.MoveInformationMessage
	Over   bool
	Winner chess.Color
}

// Session drives a Match: it asks players for moves, applies them one at a time and
// keeps the save slot and the archive up to date.
type Session struct {
	Uid  message.GameUid
	Slot message.SaveSlot

	match    *chess.Match
	store    store.Store
	autosave bool
	recorder Recorder
	onMove   func(Outcome)
	steps    int
	started  bool
	ended    bool
	lock     sync.Mutex
}

type Option func(*Session)

// WithStore sets where Save and Load keep the match.
func WithStore(s store.Store, slot message.SaveSlot) Option {
	return func(session *Session) {
		session.store = s
		session.Slot = slot
	}
}

// WithAutosave saves the match to the store after every move.
func WithAutosave() Option {
	return func(session *Session) {
		session.autosave = true
	}
}

func WithRecorder(r Recorder) Option {
	return func(session *Session) {
		session.recorder = r
	}
}

// WithObserver calls f after every accepted move, outside the session lock.
func WithObserver(f func(Outcome)) Option {
	return func(session *Session) {
		session.onMove = f
	}
}

func NewSession(m *chess.Match, opts ...Option) *Session {
	s := &Session{
		Uid:   message.NewGameUid(),
		Slot:  message.DefaultSaveSlot,
		match: m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Match returns the match without locking. Use Turn or View while moves may be played
// from another goroutine.
func (s *Session) Match() *chess.Match { return s.match }

// Turn reports who is to move and whether the game is over.
func (s *Session) Turn() (chess.Color, chess.Kind, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	over := s.ended || s.match.IsOver()
	return s.match.Current(), s.match.CurrentPlayer().Kind(), over
}

// View calls f with the match while no move can be played.
func (s *Session) View(f func(m *chess.Match)) {
	s.lock.Lock()
	defer s.lock.Unlock()

	f(s.match)
}

// Rejected reports whether err is a move the rules refused.
func Rejected(err error) bool {
	return errors.Is(err, chess.ErrInvalidOrientation) ||
		errors.Is(err, chess.ErrOutOfBounds) ||
		errors.Is(err, chess.ErrAlreadyClaimed)
}

// Run plays turns until the game is over or ctx is done. Rejected moves from a human are
// logged and asked again; from any other player they end the run.
func (s *Session) Run(ctx context.Context) error {
	logger := logx.WithContext(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := s.Step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrGameOver):
			return nil
		case Rejected(err):
			color, kind, _ := s.Turn()
			if kind != chess.Human {
				return err
			}
			logger.Infof("%s player move rejected: %v", color, err)
			continue
		default:
			return err
		}

		if out.Over {
			return nil
		}
	}
}

// Step asks the current player for a move and plays it. The session stays locked while
// the player chooses.
func (s *Session) Step(ctx context.Context) (Outcome, error) {
	out, err := s.step(ctx)
	if err == nil && s.onMove != nil {
		s.onMove(out)
	}
	return out, err
}

func (s *Session) step(ctx context.Context) (Outcome, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ended {
		return Outcome{}, ErrGameOver
	}
	p := s.match.CurrentPlayer()
	e, err := p.ChooseMove(s.match.Grid())
	if err != nil {
		return Outcome{}, fmt.Errorf("%s player: %w", p.Color(), err)
	}
	return s.play(ctx, e)
}

// Play submits e for the current player, e.g. from a click.
func (s *Session) Play(ctx context.Context, e chess.Edge) (Outcome, error) {
	s.lock.Lock()
	out, err := s.play(ctx, e)
	s.lock.Unlock()

	if err == nil && s.onMove != nil {
		s.onMove(out)
	}
	return out, err
}

// play must be called with s.lock held.
func (s *Session) play(ctx context.Context, e chess.Edge) (Outcome, error) {
	logger := logx.WithContext(ctx)
	if s.ended || s.match.IsOver() {
		return Outcome{}, ErrGameOver
	}
	if !s.started {
		s.started = true
		logger.Infof("game %s started: %dx%d, red %s, blue %s", s.Uid,
			s.match.Grid().Rows(), s.match.Grid().Cols(),
			s.match.Player(chess.Red).Kind(), s.match.Player(chess.Blue).Kind())
		if s.recorder != nil {
			s.recorder.RecordStart(s.Uid, s.match)
		}
	}

	mover := s.match.Current()
	filled, err := s.match.PlayMove(e)
	if err != nil {
		return Outcome{}, err
	}
	s.steps++

	out := Outcome{Move: message.MoveInformationMessage{
		TimeStamp: message.Now(),
		GameUid:   s.Uid,
		StepCount: s.steps,
		Player:    mover,
		MoveEdge:  e,
		Filled:    filled,
		Score:     s.match.Grid().Score(),
	}}
	logger.Info(out.Move.String())
	if out.Move.ExtraTurn() {
		logger.Infof("%s player filled %d box(es) and plays again", mover, len(filled))
	}

	if out.Over = s.match.IsOver(); out.Over {
		s.ended = true
		out.Winner, _ = s.match.Winner()
		logger.Infof("game %s over: %s, %s", s.Uid, out.Move.Score, s.match.Message())
		if s.recorder != nil {
			s.recorder.RecordEnd(s.Uid, s.match, s.steps)
		}
	}

	if s.autosave && s.store != nil {
		if err = s.store.Save(ctx, s.Slot, s.match); err != nil {
			logger.Errorf("autosave %s: %v", s.Slot, err)
		}
	}
	return out, nil
}

// Save writes the match to the session's slot.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return errors.New("session has no store")
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	return s.store.Save(ctx, s.Slot, s.match)
}

// Load replaces the match with the one saved in the session's slot. The loaded match is a
// new game: it gets a new uid and its step count starts afresh.
func (s *Session) Load(ctx context.Context) error {
	if s.store == nil {
		return errors.New("session has no store")
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.store.Load(ctx, s.Slot, s.match); err != nil {
		return err
	}
	s.Uid = message.NewGameUid()
	s.steps = 0
	s.started = false
	s.ended = s.match.IsOver()
	return nil
}

// Report summarises the session so far.
func (s *Session) Report() message.ResultMessage {
	s.lock.Lock()
	defer s.lock.Unlock()

	winner, _ := s.match.Winner()
	return message.ResultMessage{
		TimeStamp: message.Now(),
		GameUid:   s.Uid,
		Rows:      s.match.Grid().Rows(),
		Cols:      s.match.Grid().Cols(),
		StepCount: s.steps,
		State:     s.match.State().String(),
		Winner:    winner,
		Score:     s.match.Grid().Score(),
	}
}
