package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar tracks how many suite ids have been resolved
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	matched int
	missed  int
}

// NewProgressBar creates a new progress bar writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)

	return &ProgressBar{bar: bar}
}

// Resolve records one id as matched or missed
func (p *ProgressBar) Resolve(_ string, found bool) {
	if found {
		p.matched++
	} else {
		p.missed++
	}
	p.bar.Describe(describe(p.matched, p.missed))
	p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describe(matched, missed int) string {
	return color.CyanString("Resolving suite: ") +
		color.GreenString("[matched: %d", matched) +
		" | " +
		color.YellowString("missing: %d]", missed)
}
