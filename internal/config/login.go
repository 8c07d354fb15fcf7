package config

import (
	"fmt"
	"time"

	"github.com/bornholm/academia/internal/login"
	"github.com/bornholm/academia/internal/login/mock"
	"github.com/goccy/go-yaml"
)

type Login struct {
	Delay         *InterpolatedDuration `yaml:"delay"`
	TTL           *InterpolatedDuration `yaml:"ttl"`
	RateLimit     RateLimit             `yaml:"rateLimit"`
	Authenticator Authenticator         `yaml:"authenticator"`
}

type RateLimit struct {
	// Requests per second
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

type Authenticator struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultLoginConfig() Login {
	defaults := mock.NewDefaultOptions()

	return Login{
		Delay: NewInterpolatedDuration(1500 * time.Millisecond),
		TTL:   NewInterpolatedDuration(30 * time.Minute),
		RateLimit: RateLimit{
			Rate:  1,
			Burst: 5,
		},
		Authenticator: Authenticator{
			Type: InterpolatedString(fmt.Sprintf("${ACADEMIA_LOGIN_AUTHENTICATOR_TYPE:-%s}", mock.Type)),
			Options: &InterpolatedMap{
				Data: map[string]any{
					"minPasswordLength": defaults.MinPasswordLength,
					"requiredChar":      defaults.RequiredChar,
				},
			},
		},
	}
}

func NewLoginConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Login form configuration")},
		".delay":                 []*yaml.Comment{yaml.HeadComment(" Time between a submission and its resolution")},
		".ttl":                   []*yaml.Comment{yaml.HeadComment(" Forms not displayed for that long are discarded")},
		".rateLimit":             []*yaml.Comment{yaml.HeadComment(" Submissions rate limit, per client address")},
		".rateLimit.rate":        []*yaml.Comment{yaml.HeadComment(" Allowed submissions per second")},
		".rateLimit.burst":       []*yaml.Comment{yaml.HeadComment(" Allowed submissions in a burst")},
		".authenticator.type":    []*yaml.Comment{yaml.HeadComment(" Authenticator type", fmt.Sprintf(" Available: %v", login.Registered()))},
		".authenticator.options": []*yaml.Comment{yaml.HeadComment(" Authenticator options")},
	}
}
