// internal/booking/validator.go
package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"roomclerk/internal/config"
)

// Window is the organization's allowed daily time-of-day interval. Every
// booking's start and end clock times must fall inside it, boundaries
// included, and the booking may not run longer than the window itself.
type Window struct {
	Start config.TimeOfDay
	End   config.TimeOfDay
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(e), strings.Join(messages, "; "))
}

// Validator checks booking requests for field legality and time-range
// legality. It is pure: it never touches storage.
type Validator struct {
	validate *validator.Validate
	window   Window
}

func NewValidator(window Window) *Validator {
	return &Validator{
		validate: validator.New(),
		window:   window,
	}
}

// ValidateRequest runs field validation, then the time-range rules in order,
// returning the first violation.
func (v *Validator) ValidateRequest(req *Request) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateFieldErrors(validationErrs)
		}
		return err
	}
	return v.validateTimeRange(req)
}

// validateTimeRange applies the four time rules, first violation wins:
// ordering, start window membership, end window membership, duration cap.
// Window membership is inclusive on both boundaries. The duration cap
// compares whole hours on both sides; sub-hour remainders are truncated.
func (v *Validator) validateTimeRange(req *Request) error {
	if !req.StartTime.Before(req.EndTime) {
		return &TimeRangeError{Reason: ReasonStartAfterEnd}
	}

	startOfDay := config.At(req.StartTime)
	if startOfDay < v.window.Start || startOfDay > v.window.End {
		return &TimeRangeError{Reason: ReasonStartOutOfRange}
	}

	endOfDay := config.At(req.EndTime)
	if endOfDay < v.window.Start || endOfDay > v.window.End {
		return &TimeRangeError{Reason: ReasonEndOutOfRange}
	}

	requested := int(req.EndTime.Sub(req.StartTime).Hours())
	allowed := int(v.window.End.Sub(v.window.Start).Hours())
	if requested > allowed {
		return &TimeRangeError{Reason: ReasonDurationTooLong}
	}

	return nil
}

func translateFieldErrors(errs validator.ValidationErrors) FieldErrors {
	var fieldErrors FieldErrors
	for _, err := range errs {
		message := err.Error()
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}
	return fieldErrors
}
