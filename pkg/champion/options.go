package champion

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
)

// Source of uniform random numbers in [0, 1)
type RandSource interface {
	Float64() float64
}

// Maps the entropy (bits) of the aggregated distribution to the exponent
// applied to it. Must be decreasing: above 1 sharpens, below 1 flattens
type TemperatureFnType func(entropy float64) float64

type Options struct {
	Lookback int
	MaxBytes int64
	// 0 means 'use SeedGeneratorFn'
	Seed int64

	Temperature TemperatureFnType `json:"-"`
	Rand        RandSource        `json:"-"`
	Logger      zerolog.Logger    `json:"-"`
}

func (o Options) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(o)
	return builder.String()
}

func DefaultOptions() *Options {
	return &Options{
		Lookback:    DefaultLookback,
		MaxBytes:    DefaultMaxBytes,
		Temperature: DefaultTemperature,
		Logger:      zerolog.Nop(),
	}
}

// Set the number of past rounds used as context
func (o *Options) SetLookback(lookback int) *Options {
	o.Lookback = lookback
	return o
}

func (o *Options) SetMbSize(mbsize int) *Options {
	return o.SetMaxBytes(int64(mbsize) * (1 << 20))
}

// Set the memory budget of the context tree, construction fails with
// ErrInvalidConfig if it is not positive or the tree does not fit
func (o *Options) SetMaxBytes(bytes int64) *Options {
	o.MaxBytes = bytes
	return o
}

func (o *Options) SetSeed(seed int64) *Options {
	o.Seed = seed
	return o
}

// Use custom random source, overrides the seed
func (o *Options) SetRand(r RandSource) *Options {
	o.Rand = r
	return o
}

// Set custom temperature function, nil is ignored
func (o *Options) SetTemperature(f TemperatureFnType) *Options {
	if f != nil {
		o.Temperature = f
	}
	return o
}

func (o *Options) SetLogger(logger zerolog.Logger) *Options {
	o.Logger = logger
	return o
}
