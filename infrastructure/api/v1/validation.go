package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/infrastructure/api/middleware"
)

// newValidator returns a validator that reports JSON field names and knows
// the element_status tag.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("element_status", func(fl validator.FieldLevel) bool {
		_, ok := folder.ParseStatus(fl.Field().String())
		return ok
	})

	return v
}

// decodeBody reads a JSON body into dst. Unknown fields are ignored. An empty
// body is accepted when optional is true and leaves dst untouched.
func decodeBody(req *http.Request, dst any, optional bool) error {
	err := json.NewDecoder(req.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		if optional {
			return nil
		}
		return middleware.NewAPIError(http.StatusBadRequest, "request body is required", nil)
	default:
		return middleware.NewAPIError(http.StatusBadRequest, "malformed request body", err)
	}
}

// validateBody checks the validate tags of body.
func validateBody(v *validator.Validate, body any) error {
	err := v.Struct(body)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return middleware.NewAPIError(http.StatusBadRequest,
		"invalid request body: "+strings.Join(problems, "; "), err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "element_status":
		return fmt.Sprintf("%s has unknown status %v", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// parseGUID validates a GUID taken from the request path and returns its
// canonical form.
func parseGUID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", middleware.NewAPIError(http.StatusBadRequest,
			fmt.Sprintf("%q is not a valid GUID", raw), err)
	}
	return id.String(), nil
}
