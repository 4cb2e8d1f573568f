package export

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"iter"

	"github.com/klingtnet/foldersim/namespace"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.gohtml
var defaultTemplateFS embed.FS

// TemplateData contains data used to render the page template.
type TemplateData struct {
	Title   string
	Content template.HTML
}

// HTML renders tree listings to HTML pages.
type HTML struct {
	md   goldmark.Markdown
	page *template.Template
}

// NewHTML returns a renderer converting the Markdown listing with md.
// Shortcode icons are only replaced if md has an emoji extension.
func NewHTML(md goldmark.Markdown) *HTML {
	return &HTML{
		md:   md,
		page: template.Must(template.ParseFS(defaultTemplateFS, "templates/tree.gohtml")),
	}
}

// Render writes a page titled title containing lines.
func (h *HTML) Render(_ context.Context, w io.Writer, title string, lines iter.Seq[namespace.Line]) error {
	src := bytes.NewBuffer(make([]byte, 0, 4096))
	err := Markdown(src, lines)
	if err != nil {
		return err
	}

	buf := bytes.NewBuffer(nil)
	err = h.md.Convert(src.Bytes(), buf)
	if err != nil {
		return err
	}

	return h.page.ExecuteTemplate(w, "tree.gohtml", TemplateData{
		Title:   title,
		Content: template.HTML(buf.String()),
	})
}
