package validator

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var geoIDRegex = regexp.MustCompile(`^[a-z0-9]{1,8}$`)

// RequestValidator adapts go-playground/validator to echo.Validator.
// Field names in errors follow the json tags of the bound struct.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with the shipping specific rules registered
func New() *RequestValidator {
	v := validator.New()
	_ = v.RegisterValidation("geo_id", validateGeoID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

// geo_id accepts lowercase country and region codes such as "us" or "cmx"
func validateGeoID(fl validator.FieldLevel) bool {
	return geoIDRegex.MatchString(fl.Field().String())
}

// FieldErrors maps each invalid field to a readable reason.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = formatFieldError(e)
	}
	return fields
}

// Message flattens a validation error into one line, fields sorted by name
func Message(err error) string {
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_without":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "geo_id":
		return "must be a lowercase country or region code"
	default:
		return "is invalid"
	}
}
