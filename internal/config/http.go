package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address InterpolatedString `yaml:"address"`
	BaseURL InterpolatedString `yaml:"baseUrl"`
	Session Session            `yaml:"session"`
}

type Session struct {
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${ACADEMIA_HTTP_ADDRESS:-:8080}",
		BaseURL: "${ACADEMIA_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				Path:     "/",
				MaxAge:   NewInterpolatedDuration(12 * time.Hour),
				HTTPOnly: true,
				Secure:   false,
			},
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                         []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":                 []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":                 []*yaml.Comment{yaml.HeadComment(" Public URL of the website")},
		".session":                 []*yaml.Comment{yaml.HeadComment(" Visitor sessions, binding each visitor to its login form")},
		".session.keys":            []*yaml.Comment{yaml.HeadComment(" Cookie signing keys", " A random key is generated at startup when empty")},
		".session.cookie.maxAge":   []*yaml.Comment{yaml.HeadComment(" Session cookie lifetime")},
		".session.cookie.secure":   []*yaml.Comment{yaml.HeadComment(" Only send the session cookie over HTTPS")},
		".session.cookie.httpOnly": []*yaml.Comment{yaml.HeadComment(" Hide the session cookie from scripts")},
	}
}
