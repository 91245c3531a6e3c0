package config

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is wrapped by Validate for every rejected setting.
var ErrInvalidOption = errors.New("invalid option")

// Options are the user-tunable settings. Defaults come from Defaults and
// init.lua may override any of them.
type Options struct {
	SVGWidth   int
	SVGHeight  int
	SVGPadding int

	RandomCount int
	RandomMax   int // exclusive upper bound

	ShowChart bool
	ShowTable bool

	InitialInput string
	HistoryLimit int
	CacheSize    int
}

// Defaults returns the built-in settings.
func Defaults() Options {
	return Options{
		SVGWidth:     1000,
		SVGHeight:    400,
		SVGPadding:   40,
		RandomCount:  10,
		RandomMax:    8,
		ShowChart:    true,
		ShowTable:    true,
		InitialInput: "3,0,2,0,4",
		HistoryLimit: 100,
		CacheSize:    64,
	}
}

// Validate reports the first setting that cannot be used.
func (o Options) Validate() error {
	switch {
	case o.SVGWidth <= 0:
		return fmt.Errorf("%w: svg_width must be positive, got %d", ErrInvalidOption, o.SVGWidth)
	case o.SVGHeight <= 0:
		return fmt.Errorf("%w: svg_height must be positive, got %d", ErrInvalidOption, o.SVGHeight)
	case o.SVGPadding < 0 || 2*o.SVGPadding >= min(o.SVGWidth, o.SVGHeight):
		return fmt.Errorf("%w: svg_padding %d does not fit a %dx%d chart", ErrInvalidOption, o.SVGPadding, o.SVGWidth, o.SVGHeight)
	case o.RandomCount < 0:
		return fmt.Errorf("%w: random_count must not be negative, got %d", ErrInvalidOption, o.RandomCount)
	case o.RandomMax < 1:
		return fmt.Errorf("%w: random_max must be at least 1, got %d", ErrInvalidOption, o.RandomMax)
	case o.HistoryLimit < 1:
		return fmt.Errorf("%w: history_limit must be at least 1, got %d", ErrInvalidOption, o.HistoryLimit)
	case o.CacheSize < 1:
		return fmt.Errorf("%w: cache_size must be at least 1, got %d", ErrInvalidOption, o.CacheSize)
	}
	return nil
}
