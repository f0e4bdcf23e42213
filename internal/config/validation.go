package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field paths the way they appear in the TOML file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return convertValidatorErrors(verrs)
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

func convertValidatorErrors(verrs validator.ValidationErrors) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration invalid (%d error(s)):", len(verrs)))
	for _, e := range verrs {
		path := strings.TrimPrefix(e.Namespace(), "Config.")
		sb.WriteString(fmt.Sprintf("\n  %s: %s", path, validationMessage(e)))
	}
	return errors.New(sb.String())
}
