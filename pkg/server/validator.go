package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"storyboard/pkg/schema"
)

type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// enum accepts any schema.Option that belongs to its closed set.
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		opt, ok := fl.Field().Interface().(schema.Option)
		return ok && opt.IsValid()
	})
	return &requestValidator{v: v}
}

func (r *requestValidator) Validate(i any) error {
	err := r.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s %q", schema.ErrInvalidOption, fe.Field(), fmt.Sprint(fe.Value()))
	}
	return err
}
