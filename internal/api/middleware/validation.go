package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"whisper-prompting/internal/api/errors"
)

// Validator lets a request type add rules binding tags cannot express, like
// the at-most-one-prompt-mechanism check on transcription uploads.
type Validator interface {
	Validate() error
}

// tagMessage maps the binding tags this API actually uses to client-facing
// wording.
func tagMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}

func fieldErrors(err error) map[string]string {
	details := make(map[string]string)
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return details
	}
	for _, fieldError := range validationErrs {
		details[strings.ToLower(fieldError.Field())] = tagMessage(fieldError)
	}
	return details
}

// ValidateRequest binds a JSON body, mapping tag violations to per-field
// details, then runs the type's own Validate when it has one.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		details := fieldErrors(err)
		if len(details) == 0 {
			details["request"] = "invalid JSON body"
		}
		return errors.NewValidationError("Validation failed", details)
	}

	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// ValidateQuery binds query parameters; violations are a plain bad request
// since query strings carry no structured body to itemize.
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return errors.NewBadRequestError("Invalid query parameters")
	}

	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}
