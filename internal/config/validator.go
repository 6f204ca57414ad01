package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/theme"
	apperrors "github.com/alexisbeaulieu97/yearpick/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			_, err := calendar.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := theme.Get(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	// Schema validation guarantees these parse.
	lo := calendar.MustParse(cfg.Range.Min)
	hi := calendar.MustParse(cfg.Range.Max)
	if lo.After(hi) {
		return apperrors.NewValidationError("range", fmt.Sprintf("min %s is after max %s", lo, hi),
			apperrors.NewRangeConfigurationError(lo, hi))
	}

	if cfg.Initial != "" {
		initial := calendar.MustParse(cfg.Initial)
		switch {
		case initial.Before(lo):
			return apperrors.NewValidationError("initial", "must not be before range.min",
				apperrors.NewOutOfRangeError(initial, apperrors.BoundMin, lo))
		case initial.After(hi):
			return apperrors.NewValidationError("initial", "must not be after range.max",
				apperrors.NewOutOfRangeError(initial, apperrors.BoundMax, hi))
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, e.g.
// "Config.styles.nav_color" becomes "styles.nav_color".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
