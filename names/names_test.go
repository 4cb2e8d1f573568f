package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tCases := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"plain", "docs", "docs", nil},
		{"surrounding whitespace", "  a.txt\t", "a.txt", nil},
		{"inner space", "my notes", "my notes", nil},
		{"decomposed", "cafe\u0301", "caf\u00e9", nil},
		{"control characters", "a\x00b\x07c", "abc", nil},
		{"space behind control character", "\x1b docs", "docs", nil},
		{"empty", "", "", ErrEmpty},
		{"only whitespace", "  \n ", "", ErrEmpty},
		{"only control characters", "\x01\x02", "", ErrEmpty},
		{"slash", "a/b", "", ErrSeparator},
		{"backslash", `a\b`, "", ErrSeparator},
		{"dot", ".", "", ErrReserved},
		{"dot dot", "..", "", ErrReserved},
		{"up", "up", "", ErrReserved},
		{"max length", strings.Repeat("x", MaxLength), strings.Repeat("x", MaxLength), nil},
		{"too long", strings.Repeat("x", MaxLength+1), "", ErrTooLong},
		{"multibyte at max length", strings.Repeat("ü", MaxLength), strings.Repeat("ü", MaxLength), nil},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			actual, err := Normalize(tCase.input)
			if tCase.err != nil {
				require.ErrorIs(t, err, tCase.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tCase.expected, actual)
		})
	}
}

func TestNormalizerReserved(t *testing.T) {
	nz := NewNormalizer("..")

	name, err := nz.Normalize("up")
	require.NoError(t, err)
	require.Equal(t, "up", name)

	_, err = nz.Normalize("..")
	require.ErrorIs(t, err, ErrReserved)
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Folder", Title("folder"))
	require.Equal(t, "File", Title("file"))
}
