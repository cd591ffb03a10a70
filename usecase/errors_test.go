package usecase

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
		msg  string
	}{
		{validationf("price min is %s", "negative"), ErrValidation, "price min is negative"},
		{unauthorizedf("not yours"), ErrUnauthorized, "not yours"},
		{notFoundf("item %s not found", "x"), ErrNotFound, "item x not found"},
		{conflictf("taken"), ErrConflict, "taken"},
	}
	for _, c := range cases {
		wrapped := fmt.Errorf("outer: %w", c.err)
		if !errors.Is(wrapped, c.kind) {
			t.Errorf("%v does not unwrap to %v", c.err, c.kind)
		}
		if c.err.Error() != c.msg {
			t.Errorf("message = %q, want %q", c.err.Error(), c.msg)
		}
		var ue *Error
		if !errors.As(wrapped, &ue) {
			t.Errorf("%v is not a *Error", wrapped)
		}
	}
}
