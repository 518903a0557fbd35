package xerrors

import (
	"errors"
)

// As is a proxy to errors.As which reports true if any of targets matched.
func As(err error, targets ...interface{}) (ok bool) {
	if err == nil {
		return false
	}
	for _, t := range targets {
		if errors.As(err, t) {
			ok = true
		}
	}

	return ok
}

// Is is an improved proxy to errors.Is which accepts several targets.
func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func ErrIf(cond bool, err error) error {
	if cond {
		return err
	}

	return nil
}
