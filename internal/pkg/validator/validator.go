// Package validator wraps go-playground struct validation behind a single
// shared instance.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct's `validate` tags and returns a field -> tag
// map of failures, or nil when everything passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	failures := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		failures[fe.Field()] = fe.Tag()
	}
	return failures
}
