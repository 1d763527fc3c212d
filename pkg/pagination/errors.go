package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError carries the validation messages of a rejected page
// request, keyed by field name.
type InvalidArgumentError struct {
	Fields map[string][]string
}

func (e *InvalidArgumentError) Error() string {
	fields := make([]string, 0, len(e.Fields))

	for field := range e.Fields {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	messages := make([]string, 0, len(fields))

	for _, field := range fields {
		messages = append(messages, strings.Join(e.Fields[field], ", "))
	}

	return fmt.Sprintf("%s: %s", ErrInvalidArgument, strings.Join(messages, "; "))
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
