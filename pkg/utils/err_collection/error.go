package errcollection

import (
	"strings"

	"github.com/pkg/errors"
)

const delimiter = "; "

// ErrorCollection gives ability to return multiple errors instead of one.
// It gathers errors and returns an error with a message combined from all
// given errors delimited by a defined string.
type ErrorCollection struct {
	errorList []error
}

// Add inserts a new error to the collection. Nil errors are ignored.
func (e *ErrorCollection) Add(err error) {
	if err == nil {
		return
	}
	e.errorList = append(e.errorList, err)
}

// GetErrIfAny returns an error with combined message from all given errors.
// In case of no error it returns nil.
func (e *ErrorCollection) GetErrIfAny() error {
	if len(e.errorList) == 0 {
		// No error passed so nothing to report.
		return nil
	}

	messages := make([]string, 0, len(e.errorList))
	for _, err := range e.errorList {
		messages = append(messages, err.Error())
	}
	return errors.New(strings.Join(messages, delimiter))
}
