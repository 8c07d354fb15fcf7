package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/bornholm/academia/internal/site"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"icon":        Icon,
	"currentYear": currentYear,
}

var now = time.Now

func currentYear() int {
	return now().Year()
}

// Templates parses the shared layouts together with the views and layouts
// found in filesystems. A file present in several filesystems is read from
// the first one holding it.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)
	merged := mergefs.Merge(filesystems...)

	views, err := fs.Glob(merged, "**/views/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	layouts, err := fs.Glob(merged, "**/layouts/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	templates := append(views, layouts...)

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

type HeadTemplateData struct {
	PageTitle string
	// RefreshSeconds, when positive, makes the browser reload the page after
	// that many seconds.
	RefreshSeconds int
}

type FooterTemplateData struct {
	Contact    site.Contact
	NavItems   []site.NavItem
	Categories []site.Category
	Socials    []site.SocialLink
	Copyright  string
}

func NewFooterTemplateData(s *site.Site) FooterTemplateData {
	return FooterTemplateData{
		Contact:    s.Contact,
		NavItems:   s.NavItems,
		Categories: s.Categories,
		Socials:    s.Socials,
		Copyright:  s.Copyright,
	}
}

// PageTemplateData is the common ground of every page carrying the navbar
// and the footer.
type PageTemplateData struct {
	HeadTemplateData
	NavbarTemplateData
	Footer FooterTemplateData
}

func NewPageTemplateData(s *site.Site, title string, currentPath string, state NavbarState) PageTemplateData {
	return PageTemplateData{
		HeadTemplateData: HeadTemplateData{
			PageTitle: title + " - " + s.Title,
		},
		NavbarTemplateData: NewNavbarTemplateData(s, currentPath, state),
		Footer:             NewFooterTemplateData(s),
	}
}
