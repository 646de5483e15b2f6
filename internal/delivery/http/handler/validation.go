package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report json names instead of Go
// field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body. On failure it writes a 400 and
// returns false.
func bindJSON(c *gin.Context, req any) bool {
	useJSONFieldNames()

	if err := c.ShouldBindJSON(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:  "validation failed",
				Fields: fieldMessages(validationErrs),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		fields[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return fields
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fieldErr.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldErr.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Select one of: %s.", fieldErr.Param())
	default:
		return "Enter a valid value."
	}
}
