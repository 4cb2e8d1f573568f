// Package export writes tree listings as Markdown or HTML documents.
package export

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/klingtnet/foldersim/namespace"
)

// Icons prefixing the entries of a Markdown export, written as emoji shortcodes.
const (
	FolderIcon = ":file_folder:"
	FileIcon   = ":page_facing_up:"
)

// markdownEscaper escapes characters that would otherwise start inline markup,
// emoji shortcodes or HTML entities inside a name.
var markdownEscaper = func() *strings.Replacer {
	var oldnew []string
	for _, c := range "\\`*_[]<>:|~&" {
		oldnew = append(oldnew, string(c), `\`+string(c))
	}
	return strings.NewReplacer(oldnew...)
}()

// Markdown writes lines as a nested bullet list.
func Markdown(w io.Writer, lines iter.Seq[namespace.Line]) error {
	bw := bufio.NewWriter(w)
	for line := range lines {
		icon := FileIcon
		if line.Kind == namespace.Folder {
			icon = FolderIcon
		}
		bw.WriteString(strings.Repeat("  ", line.Depth))
		bw.WriteString("- ")
		bw.WriteString(icon)
		bw.WriteByte(' ')
		bw.WriteString(markdownEscaper.Replace(line.Name))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
