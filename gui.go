package main

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/HuXin0817/pipopipette/pkg/game"
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/ui"
	"github.com/HuXin0817/pipopipette/pkg/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

const automatedMoveDelay = time.Second / 3

type gui struct {
	svcCtx   *svc.ServiceContext
	window   fyne.Window
	geometry ui.Geometry

	mu      sync.Mutex
	session *game.Session
	board   *ui.Board
	status  *widget.Label
	driving sync.Mutex
}

func newGUI(svcCtx *svc.ServiceContext, w fyne.Window, geo ui.Geometry) *gui {
	return &gui{
		svcCtx:   svcCtx,
		window:   w,
		geometry: geo,
		status:   widget.NewLabel(""),
	}
}

// current returns the session and board in use; restart replaces both.
func (g *gui) current() (*game.Session, *ui.Board) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session, g.board
}

// restart throws the current match away and starts a new one.
func (g *gui) restart() error {
	m, err := g.svcCtx.NewMatch()
	if err != nil {
		return err
	}

	board := ui.NewBoard(m.Grid(), g.geometry)
	board.OnEdge = g.clicked

	g.mu.Lock()
	g.session = g.svcCtx.NewSession(m, game.WithObserver(g.moved))
	g.board = board
	g.mu.Unlock()

	g.window.SetContent(container.NewBorder(nil, g.status, nil, nil, board))
	g.refresh()

	go g.drive()
	return nil
}

func (g *gui) refresh() {
	s, board := g.current()
	s.View(func(m *chess.Match) {
		board.Update(m.Grid())
		g.status.SetText(ui.StatusText(m))
	})
}

func (g *gui) clicked(e chess.Edge) {
	s, _ := g.current()
	if _, kind, over := s.Turn(); over || kind != chess.Human {
		return
	}

	if _, err := s.Play(context.Background(), e); err != nil {
		if game.Rejected(err) {
			dialog.ShowError(err, g.window)
			return
		}
		logx.Error(err)
		return
	}
	go g.drive()
}

func (g *gui) moved(out game.Outcome) {
	g.refresh()
	if !out.Over {
		return
	}

	s, _ := g.current()
	var message string
	s.View(func(m *chess.Match) { message = m.Message() })
	dialog.ShowInformation("Game over", message, g.window)
}

// drive plays automated turns until a human is to move or the game ends.
func (g *gui) drive() {
	g.driving.Lock()
	defer g.driving.Unlock()

	s, _ := g.current()
	for {
		if _, kind, over := s.Turn(); over || kind != chess.Automated {
			return
		}

		time.Sleep(automatedMoveDelay)
		if next, _ := g.current(); next != s {
			return
		}
		if _, err := s.Step(context.Background()); err != nil {
			logx.Errorf("automated move: %v", err)
			return
		}
	}
}
