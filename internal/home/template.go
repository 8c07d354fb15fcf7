package home

import (
	"embed"
	"html/template"

	"github.com/bornholm/academia/internal/site"
	"github.com/bornholm/academia/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// HomeTemplateData contains the data needed to render the homepage
type HomeTemplateData struct {
	ui.PageTemplateData
	Hero       site.Hero
	Categories []site.Category
	About      site.About
}
