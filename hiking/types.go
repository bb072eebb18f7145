package hiking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("hiking: unknown strategy")

// ErrBadWorkers indicates a negative worker count.
var ErrBadWorkers = errors.New("hiking: workers must be non-negative")

// Strategy selects how BestPath explores the lowest cells.
type Strategy int

const (
	// BruteForce searches forward from every lowest cell.
	BruteForce Strategy = iota
	// Reverse searches backward once from the end.
	Reverse
)

func (s Strategy) String() string {
	switch s {
	case BruteForce:
		return "brute-force"
	case Reverse:
		return "reverse"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "brute-force" or "reverse" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brute-force", "bruteforce", "brute":
		return BruteForce, nil
	case "reverse":
		return Reverse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures BestPath.
type Options struct {
	Strategy Strategy
	// Workers bounds concurrent searches in BruteForce; 0 and 1 run sequentially.
	Workers int
	Ctx     context.Context
	Logger  logrus.FieldLogger

	err error
}

// Option represents a functional option for configuring BestPath.
type Option func(*Options)

// DefaultOptions returns sequential BruteForce with a background context and
// a logger that discards everything.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return Options{
		Strategy: BruteForce,
		Workers:  1,
		Ctx:      context.Background(),
		Logger:   discard,
	}
}

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithWorkers bounds the number of concurrent BruteForce searches.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithContext sets a context used to abort the sweep.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes progress messages to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
