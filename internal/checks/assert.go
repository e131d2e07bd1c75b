package checks

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Equal returns an error if want and got are not equal.
func Equal[T any](want T, got T) error {
	if cmp.Equal(want, got) {
		return nil
	}

	return fmt.Errorf("%v (expected) is NOT equal to %v (actual): %s", want, got, cmp.Diff(want, got))
}

// EqualErr is like Equal but first returns err if it is not nil.
func EqualErr[T any](want T, got T, err error) error {
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return Equal(want, got)
}

// True returns an error if got is false.
func True(got bool) error {
	return Equal(true, got)
}

// False returns an error if got is true.
func False(got bool) error {
	return Equal(false, got)
}

// ErrorIs returns an error if err does not match target.
func ErrorIs(err error, target error) error {
	if errors.Is(err, target) {
		return nil
	}

	return fmt.Errorf("%v (expected) is NOT matched by %v (actual)", target, err)
}
