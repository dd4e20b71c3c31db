package playlist

import (
	"io"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// Indicator is shown while a request is outstanding.
type Indicator interface {
	Start(description string)
	Stop()
}

// Spinner is an indeterminate progress bar.
type Spinner struct {
	w    io.Writer
	bar  *progressbar.ProgressBar
	done chan struct{}
}

// NewSpinner creates a spinner writing to w. A nil w uses an ANSI-aware stdout.
func NewSpinner(w io.Writer) *Spinner {
	if w == nil {
		w = ansi.NewAnsiStdout()
	}
	return &Spinner{w: w}
}

func (s *Spinner) Start(description string) {
	s.Stop()

	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	s.done = done
	bar := s.bar
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()
}

func (s *Spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	_ = s.bar.Finish()
	s.bar = nil
	s.done = nil
}
