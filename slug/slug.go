// Package slug turns names into portable file names.
package slug

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var transliterations = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Slugifier maps names to lower-case file names without spaces or punctuation.
// It is safe for concurrent use.
type Slugifier struct {
	separator rune
	pool      sync.Pool
}

// NewSlugifier returns a Slugifier joining words with separator.
func NewSlugifier(separator rune) *Slugifier {
	isPunctuation := runes.In(unicode.Punct).Contains
	isSymbol := runes.In(unicode.Symbol).Contains
	toSeparator := func(r rune) rune {
		if isPunctuation(r) || isSymbol(r) || unicode.IsSpace(r) {
			return separator
		}
		return r
	}

	sl := &Slugifier{separator: separator}
	sl.pool.New = func() any {
		// NFKD splits accented letters into base letter and mark, e.g. ê becomes e and ^.
		t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mark)), runes.Map(toSeparator))
		return &t
	}

	return sl
}

// Slugify returns the slug of s, e.g. "Raison d'être" becomes "raison-d-etre".
// Runs of separators are collapsed and leading or trailing ones removed.
func (sl *Slugifier) Slugify(s string) (string, error) {
	t := sl.pool.Get().(*transform.Transformer)
	defer sl.pool.Put(t)

	s, _, err := transform.String(*t, transliterations.Replace(strings.ToLower(s)))
	if err != nil {
		return "", err
	}
	words := strings.FieldsFunc(s, func(r rune) bool { return r == sl.separator })

	return strings.Join(words, string(sl.separator)), nil
}
