package config

import "github.com/goccy/go-yaml"

type Debug struct {
	Enabled InterpolatedBool `yaml:"enabled"`
}

func NewDefaultDebugConfig() Debug {
	return Debug{
		Enabled: false,
	}
}

func NewDebugConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Debug endpoints configuration")},
		".enabled": []*yaml.Comment{yaml.HeadComment(" Expose profiles, variables and metrics under /debug/")},
	}
}
