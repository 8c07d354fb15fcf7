package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/academia/internal/login"
	"github.com/pkg/errors"
)

func TestInterpolatedSettings(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, conf *Config)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/login.yml",
			Env: map[string]string{
				"ACADEMIA_LOGIN_DELAY":              "2s",
				"ACADEMIA_LOGIN_BURST":              "7",
				"ACADEMIA_MOCK_MIN_PASSWORD_LENGTH": "8",
			},
			Assert: func(t *testing.T, conf *Config) {
				if e, g := 2*time.Second, time.Duration(*conf.Login.Delay); e != g {
					t.Errorf("conf.Login.Delay: expected '%v', got '%v'", e, g)
				}

				if e, g := 10*time.Minute, time.Duration(*conf.Login.TTL); e != g {
					t.Errorf("conf.Login.TTL: expected '%v', got '%v'", e, g)
				}

				if e, g := 2.5, float64(conf.Login.RateLimit.Rate); e != g {
					t.Errorf("conf.Login.RateLimit.Rate: expected '%v', got '%v'", e, g)
				}

				if e, g := 7, int(conf.Login.RateLimit.Burst); e != g {
					t.Errorf("conf.Login.RateLimit.Burst: expected '%v', got '%v'", e, g)
				}

				if e, g := "8", conf.Login.Authenticator.Options.Data["minPasswordLength"]; e != g {
					t.Errorf("conf.Login.Authenticator.Options.Data[\"minPasswordLength\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "@", conf.Login.Authenticator.Options.Data["requiredChar"]; e != g {
					t.Errorf("conf.Login.Authenticator.Options.Data[\"requiredChar\"]: expected '%v', got '%v'", e, g)
				}

				// Interpolated options reach the authenticator
				auth, err := login.NewAuthenticator(login.Type(conf.Login.Authenticator.Type), conf.Login.Authenticator.Options.Data)
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				for password, expected := range map[string]bool{"1234567": false, "12345678": true} {
					authenticated, err := auth.Authenticate(context.Background(), "a@b.c", password)
					if err != nil {
						t.Fatalf("%+v", errors.WithStack(err))
					}

					if e, g := expected, authenticated; e != g {
						t.Errorf("Authenticate(%q): expected '%v', got '%v'", password, e, g)
					}
				}
			},
		},
		{
			Path: "testdata/environment/session.yml",
			Env: map[string]string{
				"ACADEMIA_HOST":            "academia.example.edu",
				"ACADEMIA_SESSION_KEY":     "current-key",
				"ACADEMIA_SESSION_MAX_AGE": "1h",
				"ACADEMIA_SESSION_SECURE":  "true",
			},
			Assert: func(t *testing.T, conf *Config) {
				if e, g := ":8080", string(conf.HTTP.Address); e != g {
					t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
				}

				if e, g := "https://academia.example.edu", string(conf.HTTP.BaseURL); e != g {
					t.Errorf("conf.HTTP.BaseURL: expected '%v', got '%v'", e, g)
				}

				keys := conf.HTTP.Session.Keys
				if e, g := 2, len(keys); e != g {
					t.Fatalf("len(conf.HTTP.Session.Keys): expected '%v', got '%v'", e, g)
				}

				if e, g := "current-key", keys[0]; e != g {
					t.Errorf("conf.HTTP.Session.Keys[0]: expected '%v', got '%v'", e, g)
				}

				if e, g := "static-previous-key", keys[1]; e != g {
					t.Errorf("conf.HTTP.Session.Keys[1]: expected '%v', got '%v'", e, g)
				}

				if e, g := time.Hour, time.Duration(*conf.HTTP.Session.Cookie.MaxAge); e != g {
					t.Errorf("conf.HTTP.Session.Cookie.MaxAge: expected '%v', got '%v'", e, g)
				}

				if e, g := true, bool(conf.HTTP.Session.Cookie.Secure); e != g {
					t.Errorf("conf.HTTP.Session.Cookie.Secure: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/logger.yml",
			Env: map[string]string{
				"ACADEMIA_LOGGER_LEVEL":  "-4",
				"ACADEMIA_LOGGER_FORMAT": "json",
			},
			Assert: func(t *testing.T, conf *Config) {
				if e, g := -4, int(conf.Logger.Level); e != g {
					t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
				}

				if e, g := LoggerFormatJSON, string(conf.Logger.Format); e != g {
					t.Errorf("conf.Logger.Format: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			file, err := os.Open(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			defer file.Close()

			getEnv = func(key string) string {
				return tc.Env[key]
			}
			defer func() { getEnv = os.Getenv }()

			conf := NewDefaultConfig()

			if err := Load(file, conf); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, conf)
			}
		})
	}
}

func TestInterpolationErrors(t *testing.T) {
	type testCase struct {
		Raw string
	}

	testCases := []testCase{
		{Raw: "login:\n  delay: \"${ACADEMIA_LOGIN_DELAY}\"\n"},
		{Raw: "login:\n  rateLimit:\n    burst: \"${ACADEMIA_LOGIN_BURST}\"\n"},
		{Raw: "debug:\n  enabled: \"${ACADEMIA_DEBUG_ENABLED}\"\n"},
	}

	getEnv = func(key string) string {
		return "not-a-value"
	}
	defer func() { getEnv = os.Getenv }()

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			if err := Load(strings.NewReader(tc.Raw), NewDefaultConfig()); err == nil {
				t.Errorf("expected an error for '%s'", tc.Raw)
			}
		})
	}
}
