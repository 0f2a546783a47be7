// Package validation applies the insert rules for buildings and reviews and turns the
// first failing field into a user-facing message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"rentwise/internal/models/db_models"
	"rentwise/pkg/utils"
)

var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "zipcode", func(fl validator.FieldLevel) bool {
		return zipCodePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "neighborhood", func(fl validator.FieldLevel) bool {
		return db_models.IsNeighborhood(fl.Field().String())
	})
	mustRegister(v, "buildingtype", func(fl validator.FieldLevel) bool {
		return db_models.IsBuildingType(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Struct validates s and returns a *utils.ValidationError for the first failure.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	first := fieldErrs[0]
	return utils.NewValidationError(first.Field(), message(first))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "zipcode":
		return "Must be a valid 5-digit ZIP code"
	case "neighborhood":
		return "Neighborhood must be one of the supported neighborhoods"
	case "buildingtype":
		return "Building type must be one of the supported building types"
	case "http_url":
		return fmt.Sprintf("%s must contain valid http(s) URLs", parentField(fe))
	case "min", "max":
		return boundMessage(fe)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func boundMessage(fe validator.FieldError) string {
	field := fe.Field()
	kind := fe.Kind()
	if field == "reviewText" && fe.Tag() == "min" {
		return "Review must be at least 50 characters"
	}

	switch kind {
	case reflect.String:
		if fe.Tag() == "min" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case reflect.Slice:
		return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
	default:
		if fe.Tag() == "min" {
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
}

// parentField strips the index from dive errors such as "photoUrls[2]".
func parentField(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}
