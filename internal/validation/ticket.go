// Package validation checks candidate ticket payloads before any mutation is
// committed. All rules are evaluated independently so every violation is
// reported in one pass.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TicketPayload is a candidate ticket as submitted by a caller. Description
// is optional. Priority must already be resolved by the caller: an absent
// field takes the default before validation, so an empty string here means
// the caller posted one and it is rejected like any other bad value.
type TicketPayload struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status" validate:"required,oneof=open in_progress closed"`
	Priority    string `json:"priority" validate:"oneof=low medium high"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Ticket validates a payload and returns a field -> message map. An empty map
// means the payload is acceptable. Lengths are rune counts.
func Ticket(p TicketPayload) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(p)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		switch fe.Tag() {
		case "required":
			return "Title is required"
		case "min":
			return "Title must be at least 3 characters long"
		case "max":
			return "Title must not exceed 200 characters"
		}
	case "status":
		switch fe.Tag() {
		case "required":
			return "Status is required"
		case "oneof":
			return "Status must be one of: open, in_progress, closed"
		}
	case "description":
		if fe.Tag() == "max" {
			return "Description must not exceed 1000 characters"
		}
	case "priority":
		if fe.Tag() == "oneof" {
			return "Priority must be one of: low, medium, high"
		}
	}
	return fe.Field() + " is invalid"
}
