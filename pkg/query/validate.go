package query

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrIDExclusive is reported when id is combined with page, search or sort_by.
var ErrIDExclusive = errors.New("cannot use id with page, search and sort")

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their query parameter names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError describes one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"type"`
	Message string `json:"msg"`
}

// ValidationErrors is returned by Validate when the query is rejected.
type ValidationErrors []FieldError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		if fe.Field == "" {
			parts[i] = fe.Message
			continue
		}
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "invalid query: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrIDExclusive) match a rejected id combination.
func (v ValidationErrors) Is(target error) bool {
	if target != ErrIDExclusive {
		return false
	}
	for _, fe := range v {
		if fe.Tag == "exclusive" {
			return true
		}
	}
	return false
}

// Validate checks field constraints and the id exclusivity rule.
func (q Query) Validate() error {
	var out ValidationErrors

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate query: %w", err)
		}
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: describe(fe),
			})
		}
	}

	if q.ID != nil && (q.Page != nil || q.Search != "" || q.SortBy != "") {
		out = append(out, FieldError{
			Tag:     "exclusive",
			Message: ErrIDExclusive.Error(),
		})
	}

	if len(out) > 0 {
		return out
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
