package slug

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tCases := []struct {
		name string
		in   string
		slug string
	}{
		{"empty", "", ""},
		{"only whitespace", "  \t\n\t", ""},
		{"control whitespace", "tab\tand\r\nnewline", "tab-and-newline"},
		{"root", "Root", "root"},
		{"file name", "notes_v1*.md", "notes-v1-md"},
		{"accents", "Raison d'être", "raison-d-etre"},
		{"konnichi wa", `こんにちは`, `こんにちは`},
		{"hyphens", "a-b‐c⸗d﹣e", "a-b-c-d-e"},
		{"collapsed repetitions", "''a'''b''c''d'", "a-b-c-d"},
		{"umlauts", "Prüfungsordnung Größe", "pruefungsordnung-groesse"},
		{"symbols", "C++ & Go", "c-go"},
	}

	sl := NewSlugifier('-')
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			slug, err := sl.Slugify(tCase.in)
			require.NoError(t, err)
			require.Equal(t, tCase.slug, slug)
		})
	}
}

func TestSlugifyConcurrently(t *testing.T) {
	sl := NewSlugifier('_')
	slugs := make([]string, 16)
	errs := make([]error, 16)
	var wg sync.WaitGroup
	for i := range slugs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slugs[i], errs[i] = sl.Slugify(fmt.Sprintf("Folder %d (copy)", i))
		}(i)
	}
	wg.Wait()

	for i := range slugs {
		require.NoError(t, errs[i])
		require.Equal(t, fmt.Sprintf("folder_%d_copy", i), slugs[i])
	}
}
