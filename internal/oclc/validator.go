package oclc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("oclc", validateNumber)
	validate.RegisterValidation("oclc_list", validateNumberList)
}

// jsonFieldName reports fields by their json name so error details match
// the request body.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func validateNumber(fl validator.FieldLevel) bool {
	_, err := VerifyNumber(fl.Field().Interface())
	return err == nil
}

func validateNumberList(fl validator.FieldLevel) bool {
	_, err := VerifyNumbers(fl.Field().Interface())
	return err == nil
}

// FieldError describes one failed struct field. Reason holds the
// InvalidNumberError reason for oclc and oclc_list failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Reason  string `json:"-"`
}

// ValidateStruct checks the validate tags of s, including oclc and oclc_list.
func ValidateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	var out []FieldError
	for _, fe := range verrs {
		field := fe.Field()

		var message, reason string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "oclc":
			message = fmt.Sprintf("%s must be a valid OCLC number", field)
			_, verr := VerifyNumber(fe.Value())
			reason, _ = ReasonOf(verr)
		case "oclc_list":
			message = fmt.Sprintf("%s must be a list or comma separated string of valid OCLC numbers", field)
			_, verr := VerifyNumbers(fe.Value())
			reason, _ = ReasonOf(verr)
		case "max":
			message = fmt.Sprintf("%s must have at most %s items", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, FieldError{
			Field:   field,
			Message: message,
			Reason:  reason,
		})
	}
	return out
}
