// Package progress shows that training is running and reports finished
// epochs.
//
// Nothing here touches network parameters. The indicator is purely cosmetic
// and owned by the caller of the trainer:
//
//	ind := progress.NewIndicator()
//	if err := ind.Start(ctx); err != nil { ... }
//	err := trainer.Train(net, set)
//	_ = ind.Stop() // returns once the spinner goroutine has exited
package progress

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyStarted is returned by Start on a running indicator.
var ErrAlreadyStarted = errors.New("indicator already started")

const (
	defaultText     = "Training Neural Network"
	defaultDoneText = "Training Neural Network done!"
	defaultInterval = 500 * time.Millisecond
)

// Spinner is the part of a terminal spinner the indicator drives.
//
// All calls come from the indicator's own goroutine. A Spinner must not draw
// from any other goroutine, so that nothing is written once Stop returns.
type Spinner interface {
	UpdateText(string)
	Success(...any)
}

// SpinnerFactory starts a spinner showing text.
type SpinnerFactory func(text string) (Spinner, error)

// areaSpinner draws frames into a pterm area. Unlike pterm's SpinnerPrinter it
// has no render goroutine of its own.
type areaSpinner struct {
	area     *pterm.AreaPrinter
	sequence []string
	frame    int
}

func ptermSpinner(text string) (Spinner, error) {
	s := &areaSpinner{sequence: pterm.DefaultSpinner.Sequence}
	if len(s.sequence) == 0 {
		s.sequence = []string{"-"}
	}
	area, err := pterm.DefaultArea.WithRemoveWhenDone(false).Start(s.render(text))
	if err != nil {
		return nil, err
	}
	s.area = area
	return s, nil
}

func (s *areaSpinner) render(text string) string {
	return s.sequence[s.frame] + " " + text
}

func (s *areaSpinner) UpdateText(text string) {
	s.frame = (s.frame + 1) % len(s.sequence)
	s.area.Update(s.render(text))
}

func (s *areaSpinner) Success(msg ...any) {
	s.area.Update(pterm.Success.Sprint(msg...) + "\n")
	_ = s.area.Stop()
}

type nopSpinner struct{}

func (nopSpinner) UpdateText(string) {}
func (nopSpinner) Success(...any)    {}

// NopSpinnerFactory produces spinners that print nothing.
func NopSpinnerFactory(string) (Spinner, error) {
	return nopSpinner{}, nil
}

// Indicator animates "Training Neural Network" with cycling dots until
// stopped.
type Indicator struct {
	text     string
	doneText string
	interval time.Duration
	clock    clock.Clock
	factory  SpinnerFactory

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// Option customizes an Indicator.
type Option func(*Indicator)

// WithClock sets the clock that drives the animation.
func WithClock(c clock.Clock) Option {
	return func(ind *Indicator) {
		ind.clock = c
	}
}

// WithInterval sets the time between animation frames.
func WithInterval(d time.Duration) Option {
	return func(ind *Indicator) {
		if d > 0 {
			ind.interval = d
		}
	}
}

// WithSpinnerFactory replaces the pterm spinner.
func WithSpinnerFactory(f SpinnerFactory) Option {
	return func(ind *Indicator) {
		if f != nil {
			ind.factory = f
		}
	}
}

// WithText sets the running and finished messages.
func WithText(running, done string) Option {
	return func(ind *Indicator) {
		ind.text = running
		ind.doneText = done
	}
}

// NewIndicator creates a stopped indicator.
func NewIndicator(opts ...Option) *Indicator {
	ind := &Indicator{
		text:     defaultText,
		doneText: defaultDoneText,
		interval: defaultInterval,
		clock:    clock.New(),
		factory:  ptermSpinner,
	}
	for _, opt := range opts {
		opt(ind)
	}
	return ind
}

// Start launches the animation goroutine.
func (ind *Indicator) Start(ctx context.Context) error {
	ind.mu.Lock()
	defer ind.mu.Unlock()

	if ind.cancel != nil {
		return ErrAlreadyStarted
	}
	spinner, err := ind.factory(ind.text)
	if err != nil {
		return errors.Wrap(err, "failed to start spinner")
	}

	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	ticker := ind.clock.Ticker(ind.interval)

	group.Go(func() error {
		defer ticker.Stop()
		dots := 0
		for {
			select {
			case <-ctx.Done():
				spinner.Success(ind.doneText)
				return nil
			case <-ticker.C:
				dots = (dots + 1) % 4
				spinner.UpdateText(ind.text + strings.Repeat(".", dots))
			}
		}
	})

	ind.cancel = cancel
	ind.group = group
	return nil
}

// Stop signals the animation to finish and waits until it has printed its
// final line. Stop on a stopped indicator is a no-op.
func (ind *Indicator) Stop() error {
	ind.mu.Lock()
	defer ind.mu.Unlock()

	if ind.cancel == nil {
		return nil
	}
	ind.cancel()
	err := ind.group.Wait()
	ind.cancel = nil
	ind.group = nil
	return err
}
