package validation

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json name so messages match the flag names.
		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validatorInstance
}

// Validate checks input against its `validate` struct tags. Failures are keyed
// by field name; each message is looked up in messages as "field.tag". A nil
// map means the input is valid.
func Validate(input any, messages map[string]string) map[string][]string {
	err := getValidator().Struct(input)

	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)

	if !ok {
		return map[string][]string{"": {err.Error()}}
	}

	errors := make(map[string][]string)

	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		messageKey := fmt.Sprintf("%s.%s", field, fieldError.Tag())
		message, found := messages[messageKey]

		if !found {
			slog.Debug("Validation error message not found", "key", messageKey)
			message = fmt.Sprintf("%s failed the %s check", field, fieldError.Tag())
		}

		errors[field] = append(errors[field], message)
	}

	return errors
}
