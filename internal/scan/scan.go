// Package scan finds named flags and their values in an argument vector.
package scan

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// FlagMarker starts every token that is a flag rather than a value.
const FlagMarker = "-"

var (
	// ErrFlagNotFound indicates that the flag does not appear in the vector.
	ErrFlagNotFound = errors.New("flag not found")

	// ErrMissingValue indicates that fewer values than needed follow the flag,
	// or that one of them is empty or looks like a flag.
	ErrMissingValue = errors.New("missing flag value")
)

// Index returns the position of the first exact occurrence of name in args.
// The first token is the sub-command name: when the first occurrence is
// there, the flag is not recognized at all, even if it appears again later,
// and Index returns -1 as for an absent flag.
func Index(args []string, name string) int {
	for i, arg := range args {
		if arg != name {
			continue
		}

		if i == 0 {
			return -1
		}

		return i
	}

	return -1
}

// Values returns the count values following the first occurrence of name.
// It fails with ErrFlagNotFound if name is absent, or ErrMissingValue
// when a value is missing, empty, or starts with a flag marker.
func Values(args []string, name string, count int) ([]string, error) {
	idx := Index(args, name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFlagNotFound, name)
	}

	return valuesAfter(args, idx, name, count)
}

func valuesAfter(args []string, idx int, name string, count int) ([]string, error) {
	start := idx + 1
	end := start + count

	if end > len(args) {
		return nil, fmt.Errorf("%w: %s expects %d value(s), got %d",
			ErrMissingValue, name, count, len(args)-start)
	}

	values := make([]string, 0, count)

	for _, val := range args[start:end] {
		if !IsValue(val) {
			return nil, fmt.Errorf("%w: %s expects %d value(s), got %q",
				ErrMissingValue, name, count, val)
		}

		values = append(values, val)
	}

	return values, nil
}

// IsValue reports whether a token can be the value of a flag.
func IsValue(arg string) bool {
	return arg != "" && !strings.HasPrefix(arg, FlagMarker)
}

// Remove returns a copy of args without any of the given tokens,
// and how many were removed.
func Remove(args []string, tokens ...string) ([]string, int) {
	kept := make([]string, 0, len(args))
	removed := 0

	for _, arg := range args {
		if slices.Contains(tokens, arg) {
			removed++
			continue
		}

		kept = append(kept, arg)
	}

	return kept, removed
}
