// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package validation wraps go-playground/validator v10 behind a singleton
// instance with the service's custom validators registered, and translates
// failures into the API's VALIDATION_ERROR shape.
//
//	type recommendQuery struct {
//	    Genres []string `validate:"required,min=1,dive,genre"`
//	    Limit  int      `validate:"min=0,max=20"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/navakit/nava/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Error returns the human-readable message.
func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError aggregates the failures of one request.
type RequestValidationError struct {
	fields []FieldError
}

// Fields returns all field failures.
func (ve *RequestValidationError) Fields() []FieldError {
	return ve.fields
}

// Error implements error with a combined message.
func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.fields))
	for i, f := range ve.fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// ToAPIError converts the failures to the API error envelope, one detail
// entry per failed field.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	if len(ve.fields) == 0 {
		return &models.APIError{Code: models.ErrCodeValidation, Message: "Validation failed"}
	}
	details := make(map[string]string, len(ve.fields))
	messages := make([]string, len(ve.fields))
	for i, f := range ve.fields {
		details[f.Field] = f.Message
		messages[i] = f.Message
	}
	return &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// GetValidator returns the singleton validator with custom validators
// registered. Thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// genre: value must be in the catalog genre vocabulary.
		_ = validate.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			_, err := models.ParseGenre(fl.Field().String())
			return err == nil
		})

		// songtype: value must be a known song type selector.
		_ = validate.RegisterValidation("songtype", func(fl validator.FieldLevel) bool {
			_, err := models.ParseSongType(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// ValidateStruct validates s, returning nil on success.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
		}
	}
	return &RequestValidationError{fields: fields}
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()
	isString := fe.Kind().String() == "string"

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "genre":
		return fmt.Sprintf("%s must be a known genre", field)
	case "songtype":
		return fmt.Sprintf("%s must be a known song type", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
