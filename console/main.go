package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/HuXin0817/pipopipette/pkg/config"
	"github.com/HuXin0817/pipopipette/pkg/game"
	"github.com/HuXin0817/pipopipette/pkg/models/chess"
	"github.com/HuXin0817/pipopipette/pkg/models/model"
	"github.com/HuXin0817/pipopipette/pkg/models/term"
	"github.com/HuXin0817/pipopipette/pkg/pprof"
	"github.com/HuXin0817/pipopipette/pkg/svc"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "", "config file path")
	rows       = flag.Int("rows", 3, "rows of boxes")
	cols       = flag.Int("cols", 3, "columns of boxes")
	red        = flag.String("red", "human", "red player: human or ai")
	blue       = flag.String("blue", "ai", "blue player: human or ai")
	load       = flag.Bool("load", false, "resume the match saved in the slot")
	save       = flag.Bool("save", false, "save the match to the slot when input ends")
	slot       = flag.String("slot", "default", "save slot name")
	seed       = flag.Int64("seed", 0, "random seed for automated players")
	simulate   = flag.Int("simulate", 0, "play this many automated games and print the tally")
	profile    = flag.String("pprof", "", "serve pprof on this address")
	noColor    = flag.Bool("no-color", false, "disable terminal colours")
)

// applyFlags lets explicitly set flags win over the config file.
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
	if *configFile == "" {
		c.LogToFiles(config.DefaultLogDir)
	}
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Pprof != "" {
		pprof.Serve(c.Pprof)
	}

	svcCtx := svc.NewServiceContext(c, os.Stdin, os.Stdout)
	defer svcCtx.Close()

	var err error
	if *simulate > 0 {
		err = runSimulation(svcCtx, *simulate)
	} else {
		err = play(svcCtx, term.NewRenderer(os.Stdout, !*noColor))
	}
	if err != nil {
		logx.Error(err)
		svcCtx.Close()
		logx.Close()
		os.Exit(1)
	}
}

func play(svcCtx *svc.ServiceContext, r *term.Renderer) error {
	ctx := context.Background()
	m, err := svcCtx.NewMatch()
	if err != nil {
		return err
	}

	s := svcCtx.NewSession(m)
	if *load {
		if err = s.Load(ctx); err != nil {
			return err
		}
	}

	for !m.IsOver() {
		r.Print(m)
		_, err = s.Step(ctx)
		switch {
		case err == nil:
		case game.Rejected(err):
			r.Rejected(err)
		case errors.Is(err, io.EOF):
			fmt.Println()
			if *save {
				if err = s.Save(ctx); err != nil {
					return err
				}
				fmt.Printf("Match saved to slot %q.\n", s.Slot)
			}
			return nil
		default:
			return err
		}
	}

	r.Print(m)
	if *save {
		return s.Save(ctx)
	}
	return nil
}

func runSimulation(svcCtx *svc.ServiceContext, games int) error {
	svcCtx.Config.Red, svcCtx.Config.Blue = "ai", "ai"

	logx.SetLevel(logx.ErrorLevel)
	bar := model.NewBar(games, "simulating")

	wins := make(map[chess.Color]int)
	for range games {
		m, err := svcCtx.NewMatch()
		if err != nil {
			return err
		}
		var opts []game.Option
		if svcCtx.Archive != nil {
			opts = append(opts, game.WithRecorder(svcCtx.Archive))
		}
		if err = game.NewSession(m, opts...).Run(context.Background()); err != nil {
			return err
		}

		winner, _ := m.Winner()
		wins[winner]++
		bar.Describe(fmt.Sprintf("red %d / blue %d", wins[chess.Red], wins[chess.Blue]))
		bar.Add(1)
	}
	bar.Close()

	fmt.Printf("\n%s wins: %d\n%s wins: %d\n",
		aurora.Red("red"), wins[chess.Red], aurora.Blue("blue"), wins[chess.Blue])
	return nil
}
