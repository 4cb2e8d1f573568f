package names

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var caserPool = sync.Pool{
	New: func() any {
		caser := cases.Title(language.English)
		return &caser
	},
}

// Title returns s in title-case, e.g. folder becomes Folder.
func Title(s string) string {
	caser := caserPool.Get().(*cases.Caser)
	defer caserPool.Put(caser)

	return caser.String(s)
}
