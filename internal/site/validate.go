package site

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func (s *Site) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "invalid site content")
	}

	return nil
}
