package main

import (
	"flag"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/HuXin0817/pipopipette/pkg/config"
	"github.com/HuXin0817/pipopipette/pkg/models/ui"
	"github.com/HuXin0817/pipopipette/pkg/pprof"
	"github.com/HuXin0817/pipopipette/pkg/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "", "config file path")
	rows       = flag.Int("rows", 3, "rows of boxes")
	cols       = flag.Int("cols", 3, "columns of boxes")
	red        = flag.String("red", "human", "red player: human or ai")
	blue       = flag.String("blue", "ai", "blue player: human or ai")
	slot       = flag.String("slot", "default", "save slot name")
	seed       = flag.Int64("seed", 0, "random seed for automated players")
	profile    = flag.String("pprof", "", "serve pprof on this address")
	lineLength = flag.Float64("line", float64(ui.DefaultLineLength), "line length in pixels")
)

func applyFlags(c *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			c.Rows = *rows
		case "cols":
			c.Cols = *cols
		case "red":
			c.Red = *red
		case "blue":
			c.Blue = *blue
		case "slot":
			c.Slot = *slot
		case "seed":
			c.Seed = *seed
		case "pprof":
			c.Pprof = *profile
		}
	})
}

func main() {
	flag.Parse()
	c := config.MustLoad(*configFile)
	applyFlags(&c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Pprof != "" {
		pprof.Serve(c.Pprof)
	}

	svcCtx := svc.NewServiceContext(c, nil, nil)
	defer svcCtx.Close()

	a := app.New()
	a.Settings().SetTheme(ui.GameTheme{})
	w := a.NewWindow("Pipopipette")
	w.SetFixedSize(true)

	g := newGUI(svcCtx, w, ui.NewGeometry(float32(*lineLength)))
	w.SetMainMenu(fyne.NewMainMenu(g.gameMenu()))
	if err := g.restart(); err != nil {
		logx.Must(err)
	}
	w.ShowAndRun()
}
