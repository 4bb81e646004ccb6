package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates
var TemplateFS embed.FS

// PageNames lists the dashboard pages, each rendered inside the base layout
var PageNames = []string{"home", "scrapper", "blogs"}

// LoadPages parses every page together with the base layout
func LoadPages() (map[string]*template.Template, error) {
	funcMap := template.FuncMap{
		"lower": strings.ToLower,
	}

	pages := make(map[string]*template.Template, len(PageNames))
	for _, page := range PageNames {
		t, err := template.New("base.html").Funcs(funcMap).ParseFS(TemplateFS,
			"templates/layouts/base.html",
			"templates/pages/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = t
	}
	return pages, nil
}
