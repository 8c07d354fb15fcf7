package config

import (
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// getEnv resolves the ${VAR} references of the configuration values.
var getEnv = os.Getenv

// interpolateScalar decodes a scalar as a string and expands its variables.
func interpolateScalar(unmarshal func(any) error) (string, error) {
	var raw string

	if err := unmarshal(&raw); err != nil {
		return "", errors.WithStack(err)
	}

	expanded, err := envsubst.Eval(raw, getEnv)
	if err != nil {
		return "", errors.Wrapf(err, "could not interpolate '%s'", raw)
	}

	return expanded, nil
}

type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolateScalar(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(str)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolateScalar(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	value, err := strconv.Atoi(str)
	if err != nil {
		return errors.Wrapf(err, "'%s' is not an integer", str)
	}

	*ii = InterpolatedInt(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolateScalar(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return errors.Wrapf(err, "'%s' is not a number", str)
	}

	*ifl = InterpolatedFloat(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

type InterpolatedBool bool

func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolateScalar(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	value, err := strconv.ParseBool(str)
	if err != nil {
		return errors.Wrapf(err, "'%s' is not a boolean", str)
	}

	*ib = InterpolatedBool(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedBool)

// InterpolatedDuration accepts Go durations ("1500ms", "30m") or a number
// of nanoseconds.
type InterpolatedDuration time.Duration

func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := interpolateScalar(unmarshal)
	if err != nil {
		return errors.WithStack(err)
	}

	duration, err := time.ParseDuration(str)
	if err != nil {
		nanoseconds, parseErr := strconv.ParseInt(str, 10, 64)
		if parseErr != nil {
			return errors.Wrapf(err, "'%s' is not a duration", str)
		}

		duration = time.Duration(nanoseconds)
	}

	*id = InterpolatedDuration(duration)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	return time.Duration(*id).String(), nil
}

var _ yaml.InterfaceMarshaler = new(InterpolatedDuration)

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}

type InterpolatedStringSlice []string

func (iss *InterpolatedStringSlice) UnmarshalYAML(unmarshal func(any) error) error {
	var values []string

	if err := unmarshal(&values); err != nil {
		return errors.WithStack(err)
	}

	for idx, raw := range values {
		expanded, err := envsubst.Eval(raw, getEnv)
		if err != nil {
			return errors.Wrapf(err, "could not interpolate '%s'", raw)
		}

		values[idx] = expanded
	}

	*iss = values

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedStringSlice)

// InterpolatedMap holds free-form options, like the ones of an
// authenticator. Every string it contains, at any depth, is interpolated.
type InterpolatedMap struct {
	Data map[string]any
}

func (im *InterpolatedMap) UnmarshalYAML(unmarshal func(any) error) error {
	var data map[string]any

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	interpolated, err := interpolateValue(data)
	if err != nil {
		return errors.WithStack(err)
	}

	im.Data, _ = interpolated.(map[string]any)

	return nil
}

func (im *InterpolatedMap) MarshalYAML() (any, error) {
	return im.Data, nil
}

var (
	_ yaml.InterfaceUnmarshaler = new(InterpolatedMap)
	_ yaml.InterfaceMarshaler   = new(InterpolatedMap)
)

func interpolateValue(value any) (any, error) {
	switch typ := value.(type) {
	case string:
		expanded, err := envsubst.Eval(typ, getEnv)
		if err != nil {
			return nil, errors.Wrapf(err, "could not interpolate '%s'", typ)
		}

		return expanded, nil

	case map[string]any:
		for key, item := range typ {
			interpolated, err := interpolateValue(item)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			typ[key] = interpolated
		}

	case []any:
		for idx, item := range typ {
			interpolated, err := interpolateValue(item)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			typ[idx] = interpolated
		}
	}

	return value, nil
}
