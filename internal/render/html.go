package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a statements document to a standalone printable page.
func HTML(md, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := converter.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return page.Bytes(), nil
}
