package login

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

// LoginTemplateData contains the data needed to render the login page
type LoginTemplateData struct {
	ui.HeadTemplateData
	Logo              site.Image
	Action            string
	Form              Form
	ForgotPasswordURL string
}
