package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cleanenergy-leads/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateStruct runs the validate tags of s and converts failures
// into a *domain.ValidationError
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", fe.Field(), fe.Param())
	case "number":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
