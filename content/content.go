// Package content embeds the article document, HTML templates and static
// assets, and loads them into models and a gin renderer.
package content

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"

	"github.com/gin-contrib/multitemplate"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"lightwork-server/models"
)

//go:embed content.yaml templates/*.html static/*
var files embed.FS

// Template names registered with the renderer.
const (
	PageTemplate  = "page"
	ErrorTemplate = "error"
)

var validate = validator.New()

// Load parses the article document. An empty path selects the embedded copy.
func Load(path string) (*models.Page, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = files.ReadFile("content.yaml")
	} else {
		log.Printf("Loading page content from %s", path)
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an article document.
func Parse(data []byte) (*models.Page, error) {
	var page models.Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := validate.Struct(&page); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &page, nil
}

// NewRenderer parses the embedded templates into a multitemplate renderer.
func NewRenderer() (multitemplate.Render, error) {
	r := multitemplate.New()

	page, err := template.New("layout.html").ParseFS(files,
		"templates/layout.html",
		"templates/page.html",
		"templates/spectrum.html",
		"templates/expert.html",
		"templates/quiz.html",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.Add(PageTemplate, page)

	errPage, err := template.New("layout.html").ParseFS(files, "templates/layout.html", "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse error template: %w", err)
	}
	r.Add(ErrorTemplate, errPage)

	return r, nil
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static/ is embedded at build time
		panic(err)
	}
	return sub
}
