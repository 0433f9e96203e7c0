package fx

import (
	"reflect"

	"go.uber.org/multierr"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// JoinErrors folds a list of errors into one combined error.
// An empty or all-nil list yields nil.
func JoinErrors(errs []error) error {
	return multierr.Combine(errs...)
}

// SplitErrors unpacks a combined error back into its parts. A plain error
// yields a single-element list, nil yields an empty one.
func SplitErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return multierr.Errors(err)
}
