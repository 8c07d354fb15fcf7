package config

import "github.com/goccy/go-yaml"

type Assets struct {
	Dir InterpolatedString `yaml:"dir"`
}

func NewDefaultAssetsConfig() Assets {
	return Assets{
		Dir: "${ACADEMIA_ASSETS_DIR:-}",
	}
}

func NewAssetsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":     []*yaml.Comment{yaml.HeadComment(" Static assets configuration")},
		".dir": []*yaml.Comment{yaml.HeadComment(" Directory whose files are served under /assets/, overriding the embedded ones", " Leave empty to only serve the embedded assets")},
	}
}
