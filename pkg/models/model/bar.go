package model

import (
	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

func NewBar(len int, description string) *Bar {
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Add(i int) {
	(*progressbar.ProgressBar)(b).Add(i)
}

// Describe replaces the text shown before the bar, e.g. a running tally.
func (b *Bar) Describe(description string) {
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Close() {
	(*progressbar.ProgressBar)(b).Finish()
	(*progressbar.ProgressBar)(b).Close()
}
