package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("isotime", validateISOTime)
	Validate.RegisterValidation("decision", validateDecision)
}

func validateISOTime(fl validator.FieldLevel) bool {
	_, err := ParseTimestamp(fl.Field().String(), nil)
	return err == nil
}

func validateDecision(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "approved", "rejected":
		return true
	}
	return false
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*ErrorResponse{{Tag: "invalid", Msg: err.Error()}}
	}

	for _, err := range validationErrors {
		var element ErrorResponse
		element.Field = err.Field()
		element.Tag = err.Tag()

		switch err.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "isotime":
			element.Msg = fmt.Sprintf("Field '%s' must be an ISO-8601 timestamp.", element.Field)
		case "decision":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: approved rejected.", element.Field)
		case "oneof":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation on tag '%s'.", element.Field, element.Tag)
		}
		errs = append(errs, &element)
	}
	return errs
}
