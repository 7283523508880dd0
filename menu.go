package main

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/HuXin0817/pipopipette/pkg/store"
)

func (g *gui) gameMenu() *fyne.Menu {
	restartMenuItem := &fyne.MenuItem{
		Label: "New Game",
		Action: func() {
			if err := g.restart(); err != nil {
				dialog.ShowError(err, g.window)
			}
		},
		Shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyR},
	}

	saveMenuItem := &fyne.MenuItem{
		Label: "Save",
		Action: func() {
			s, _ := g.current()
			if err := s.Save(context.Background()); err != nil {
				dialog.ShowError(err, g.window)
				return
			}
			dialog.ShowInformation("Saved", "Match saved to slot "+string(s.Slot), g.window)
		},
		Shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyS},
	}

	loadMenuItem := &fyne.MenuItem{
		Label: "Load",
		Action: func() {
			s, _ := g.current()
			err := s.Load(context.Background())
			switch {
			case errors.Is(err, store.ErrSlotNotFound):
				dialog.ShowInformation("Load", "Nothing saved in slot "+string(s.Slot), g.window)
			case err != nil:
				dialog.ShowError(err, g.window)
			default:
				g.refresh()
				go g.drive()
			}
		},
		Shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyL},
	}

	return fyne.NewMenu("Game", restartMenuItem, saveMenuItem, loadMenuItem)
}
