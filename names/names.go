// Package names normalizes and validates the names of namespace entries.
package names

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the maximum number of characters a name may have.
const MaxLength = 99

var (
	// ErrEmpty indicates a name that is empty after normalization.
	ErrEmpty = fmt.Errorf("name must not be empty")
	// ErrTooLong indicates a name longer than MaxLength characters.
	ErrTooLong = fmt.Errorf("name must not be longer than %d characters", MaxLength)
	// ErrSeparator indicates a name spanning more than one path segment.
	ErrSeparator = fmt.Errorf("name must not contain a path separator")
	// ErrReserved indicates a name that is used as a navigation token.
	ErrReserved = fmt.Errorf("name is reserved")
)

// Reserved are the navigation tokens that cannot be used as names.
var Reserved = []string{".", "..", "up"}

// Normalizer brings names into a canonical form so that visually equal names compare equal.
type Normalizer struct {
	reserved map[string]struct{}
	pool     sync.Pool
}

// NewNormalizer returns a Normalizer rejecting the given reserved names.
func NewNormalizer(reserved ...string) *Normalizer {
	nz := &Normalizer{reserved: make(map[string]struct{}, len(reserved))}
	for _, name := range reserved {
		nz.reserved[name] = struct{}{}
	}
	nz.pool.New = func() any {
		// NFC composes decomposed sequences, e.g. e followed by a combining acute becomes é.
		// Control characters are dropped since they cannot be displayed in a listing.
		t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cc)))
		return &t
	}

	return nz
}

// Normalize returns the canonical form of name or an error if it is not a valid name.
func (nz *Normalizer) Normalize(name string) (string, error) {
	t := nz.pool.Get().(*transform.Transformer)
	defer nz.pool.Put(t)

	s, _, err := transform.String(*t, name)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return "", ErrEmpty
	case strings.ContainsAny(s, `/\`):
		return "", ErrSeparator
	case utf8.RuneCountInString(s) > MaxLength:
		return "", ErrTooLong
	}
	if _, ok := nz.reserved[s]; ok {
		return "", fmt.Errorf("%w: %q", ErrReserved, s)
	}

	return s, nil
}

var std = NewNormalizer(Reserved...)

// Normalize normalizes name rejecting the Reserved navigation tokens.
func Normalize(name string) (string, error) {
	return std.Normalize(name)
}
