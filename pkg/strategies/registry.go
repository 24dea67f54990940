package strategies

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidArgs     = errors.New("invalid strategy arguments")
)

// Builds a fresh strategy from command-line style arguments
type Factory func(args []string) (rps.Strategy, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register a factory under 'name', replacing the previous one
func Register(name string, f Factory) {
	if f == nil {
		panic("[strategies] Register: nil factory for " + name)
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(name)] = f
}

// Create a new strategy instance by its registered name
func New(name string, args []string) (rps.Strategy, error) {
	mu.RLock()
	f, ok := registry[strings.ToLower(name)]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return f(args)
}

// Sorted names of the registered strategies
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse 'args' with 'fs', no positional arguments are accepted
func parseArgs(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgs, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %v", ErrInvalidArgs, fs.Name(), fs.Args())
	}
	return nil
}

func init() {
	Register("champion", newChampion)
	Register("constant", newConstant)
	Register("cycle", newCycle)
	Register("random", newRandom)
	Register("frequency", newFrequency)
	Register("beatlast", newBeatLast)
}
