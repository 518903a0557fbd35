package xerrors

import (
	"strconv"
	"strings"
)

// Join keeps nil errors out, unlike a plain slice of errors.
func Join(errs ...error) error {
	joined := make(joinErrors, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			joined = append(joined, err)
		}
	}
	switch len(joined) {
	case 0:
		return nil
	case 1:
		return joined[0]
	default:
		return joined
	}
}

type joinErrors []error

func (errs joinErrors) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, err := range errs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(err.Error()))
	}
	b.WriteByte(']')

	return b.String()
}

func (errs joinErrors) Unwrap() []error {
	return errs
}
