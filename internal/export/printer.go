// Package export renders a post as a standalone HTML page for printing.
// Post content is treated as Markdown; raw HTML inside it is not rendered.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/dmitrijs2005/myblog/internal/filex"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
)

var page = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<title>{{.Post.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
html[data-theme="dark"] body { background: #1e1e1e; color: #eee; }
.meta { color: #777; font-size: 0.9rem; }
@media print { .meta { color: #000; } }
</style>
</head>
<body>
<article>
<h1>{{.Post.Title}}</h1>
<p class="meta">{{.Post.Date}} by {{.Post.Username}}</p>
{{.Body}}
</article>
</body>
</html>
`))

type pageData struct {
	Post  models.Post
	Theme models.Theme
	Body  template.HTML
}

type Printer struct {
	dir string
	md  goldmark.Markdown
	log logging.Logger
}

// NewPrinter writes pages under dir, creating it on first use.
func NewPrinter(dir string, log logging.Logger) *Printer {
	if log == nil {
		log = logging.Discard()
	}
	return &Printer{dir: dir, md: goldmark.New(), log: log}
}

// Render returns the HTML page for p.
func (pr *Printer) Render(p models.Post, theme models.Theme) ([]byte, error) {
	var body bytes.Buffer
	if err := pr.md.Convert([]byte(p.Content), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, pageData{Post: p, Theme: theme, Body: template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}

// Print renders p to <dir>/post-<id>.html and returns the file path.
func (pr *Printer) Print(ctx context.Context, p models.Post, theme models.Theme) (string, error) {
	data, err := pr.Render(p, theme)
	if err != nil {
		return "", err
	}
	path, err := filex.WriteFile(pr.dir, FileName(p.ID), data)
	if err != nil {
		return "", fmt.Errorf("failed to write print file: %w", err)
	}
	pr.log.Info(ctx, "post printed", "post_id", p.ID, "path", path)
	return path, nil
}

func FileName(id models.PostID) string {
	return "post-" + id.String() + ".html"
}
