//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so that progress display can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the suffix under the spinner lock, since the animation
// goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressDisplay shows a spinner and a progress bar while a distribution
// is being evaluated. Update may be called from several goroutines; the bar
// never moves backwards.
type ProgressDisplay struct {
	spinner Spinner

	mu   sync.Mutex
	last float64
}

// NewProgressDisplay creates a progress display writing to out.
func NewProgressDisplay(out io.Writer) *ProgressDisplay {
	return newProgressDisplay(newSpinner(spinner.WithWriter(out)))
}

func newProgressDisplay(s Spinner) *ProgressDisplay {
	return &ProgressDisplay{spinner: s}
}

// Start shows the spinner with an empty bar.
func (p *ProgressDisplay) Start() {
	p.spinner.UpdateSuffix(progressSuffix(0))
	p.spinner.Start()
}

// Update records a completed fraction in [0, 1].
func (p *ProgressDisplay) Update(progress float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if progress <= p.last {
		return
	}
	p.last = progress
	p.spinner.UpdateSuffix(progressSuffix(progress))
}

// Stop halts the spinner.
func (p *ProgressDisplay) Stop() {
	p.spinner.Stop()
}

func progressSuffix(progress float64) string {
	return fmt.Sprintf(" Evaluating terms %s %6.2f%%", progressBar(progress, ProgressBarWidth), progress*100)
}

// progressBar renders progress (clamped to [0, 1]) as a bar of length runes.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
