package middleware

import (
	"fmt"

	"foodbridge/internal/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackOf returns the deepest pkg/errors stack in the chain, or "" when none was recorded.
func stackOf(err error) string {
	var trace string
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			trace = fmt.Sprintf("%+v", st.StackTrace())
		}
		err = errors.Unwrap(err)
	}

	return trace
}
