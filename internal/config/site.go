package config

import "github.com/goccy/go-yaml"

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":            []*yaml.Comment{yaml.HeadComment(" Website content")},
		".navItems":   []*yaml.Comment{yaml.HeadComment(" Main navigation entries, in display order")},
		".userMenu":   []*yaml.Comment{yaml.HeadComment(" User menu entries, the first one is also listed in the mobile menu")},
		".categories": []*yaml.Comment{yaml.HeadComment(" Focus areas presented on the homepage")},
		".hero":       []*yaml.Comment{yaml.HeadComment(" Homepage banner")},
		".about":      []*yaml.Comment{yaml.HeadComment(" Homepage presentation block")},
	}
}
