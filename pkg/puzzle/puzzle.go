// Package puzzle loads pants puzzle definitions from TOML files and parses
// states from their compact textual forms.
//
// A puzzle file names the start state and, optionally, exploration bounds:
//
//	pointer = 2
//	values = [1, 2, 3, 4, 5]
//
//	[explore]
//	max_depth = 6
//	max_states = 10000
//
// All inputs are validated; malformed states are reported with the
// INVALID_STATE error code from package errors.
package puzzle

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pants/pkg/errors"
	"github.com/matzehuels/pants/pkg/pants"
)

// File is the decoded form of a puzzle definition.
type File struct {
	Pointer int   `toml:"pointer"`
	Values  []int `toml:"values"`

	Explore ExploreSection `toml:"explore"`
}

// ExploreSection holds optional walk bounds. Zero values mean "not set".
type ExploreSection struct {
	MaxDepth  int `toml:"max_depth"`
	MaxStates int `toml:"max_states"`
}

// State returns the start state described by the file.
func (f *File) State() pants.State[int] {
	return pants.NewState(f.Pointer, f.Values...)
}

// Decode reads a puzzle definition from r and validates its start state.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode puzzle")
	}
	if !md.IsDefined("values") {
		return nil, errors.New(errors.ErrCodeInvalidState, "puzzle has no values")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown puzzle keys: %s", strings.Join(keys, ", "))
	}
	if err := f.State().Validate(); err != nil {
		return nil, err
	}
	if f.Explore.MaxDepth < 0 || f.Explore.MaxStates < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "explore bounds must not be negative")
	}
	return &f, nil
}

// Load reads and decodes the puzzle file at path.
func Load(path string) (*File, error) {
	if err := errors.ValidatePuzzleFilename(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "puzzle file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Decode(bytes.NewReader(data))
}

// ParseState parses the compact form "pointer:v,v,v", e.g. "2:1,2,3,4,5".
// Whitespace around numbers is ignored.
func ParseState(s string) (pants.State[int], error) {
	ptr, vals, ok := strings.Cut(s, ":")
	if !ok {
		return pants.State[int]{}, errors.New(errors.ErrCodeInvalidState, "state %q: want pointer:v,v,...", s)
	}
	pointer, err := strconv.Atoi(strings.TrimSpace(ptr))
	if err != nil {
		return pants.State[int]{}, errors.Wrap(errors.ErrCodeInvalidState, err, "state %q: pointer", s)
	}
	values, err := parseValues(strings.Split(vals, ","))
	if err != nil {
		return pants.State[int]{}, errors.Wrap(errors.ErrCodeInvalidState, err, "state %q", s)
	}
	return validated(pants.NewState(pointer, values...))
}

// ParseArgs parses a pointer followed by the values as separate arguments,
// e.g. ["2", "1", "2", "3"].
func ParseArgs(args []string) (pants.State[int], error) {
	if len(args) < 2 {
		return pants.State[int]{}, errors.New(errors.ErrCodeInvalidState, "need a pointer and at least one value")
	}
	pointer, err := strconv.Atoi(args[0])
	if err != nil {
		return pants.State[int]{}, errors.Wrap(errors.ErrCodeInvalidState, err, "pointer %q", args[0])
	}
	values, err := parseValues(args[1:])
	if err != nil {
		return pants.State[int]{}, errors.Wrap(errors.ErrCodeInvalidState, err, "values")
	}
	return validated(pants.NewState(pointer, values...))
}

// ParsePath parses one compact state per element into a path.
func ParsePath(states []string) (pants.Path[int], error) {
	if len(states) == 0 {
		return pants.Path[int]{}, errors.New(errors.ErrCodeInvalidInput, "path needs at least one state")
	}
	parsed := make([]pants.State[int], len(states))
	for i, s := range states {
		st, err := ParseState(s)
		if err != nil {
			return pants.Path[int]{}, err
		}
		if i > 0 && st.Len() != parsed[0].Len() {
			return pants.Path[int]{}, errors.New(errors.ErrCodeInvalidState, "state %q has %d values, want %d", s, st.Len(), parsed[0].Len())
		}
		parsed[i] = st
	}
	return pants.NewPath(parsed...), nil
}

func parseValues(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func validated(s pants.State[int]) (pants.State[int], error) {
	if err := s.Validate(); err != nil {
		return pants.State[int]{}, err
	}
	return s, nil
}
