package export

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/klingtnet/foldersim/namespace"
	"github.com/klingtnet/foldersim/slug"
)

// ErrUnknownFormat indicates an export file name without a supported extension.
var ErrUnknownFormat = fmt.Errorf("unknown export format, use .md or .html")

// DefaultName is the base name used when the title has no usable slug.
const DefaultName = "tree"

// Exporter renders listings in the format given by the file extension and stores them.
type Exporter struct {
	html      *HTML
	stor      Storage
	slugifier *slug.Slugifier
}

// New returns an Exporter.
func New(html *HTML, stor Storage) *Exporter {
	return &Exporter{html: html, stor: stor, slugifier: slug.NewSlugifier('-')}
}

// FileName returns the file written for target.
// A bare format like "md" or "html" is expanded to a file named after the slug of title.
func (e *Exporter) FileName(target, title string) (string, error) {
	switch strings.ToLower(target) {
	case "md", "markdown", "html", "htm":
	default:
		return target, nil
	}

	base, err := e.slugifier.Slugify(title)
	if err != nil {
		return "", err
	}
	if base == "" {
		base = DefaultName
	}

	return base + "." + strings.ToLower(target), nil
}

// Export writes lines to the file given by target and returns its name, title is used for HTML pages.
func (e *Exporter) Export(ctx context.Context, target, title string, lines iter.Seq[namespace.Line]) (string, error) {
	name, err := e.FileName(target, title)
	if err != nil {
		return "", err
	}

	buf := bytes.NewBuffer(make([]byte, 0, 8192))
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		err = Markdown(buf, lines)
	case ".html", ".htm":
		err = e.html.Render(ctx, buf, title, lines)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	if err != nil {
		return "", fmt.Errorf("rendering %q failed: %w", name, err)
	}

	return name, e.stor.Store(ctx, name, buf)
}
