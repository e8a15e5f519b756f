package rules

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"standby-builder/internal/core/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})
	})
	return validate
}

// CheckRequired reports the identity fields a dispatch cannot do without.
// Missing fields are listed by label in declaration order.
func CheckRequired(cfg domain.NormalizedConfig) error {
	err := structValidator().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("check required fields: %w", err)
	}
	labels := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		labels = append(labels, fe.Field())
	}
	return domain.NewMissingFields(labels)
}
