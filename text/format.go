package text

import (
	"fmt"
)

// Formatted renders format with args using fmt.Sprintf. Any argument that is
// a Text is materialized first, in argument order; the first failure is
// returned unchanged. Other arguments are passed through as is.
func Formatted(format string, args ...any) Text {
	return From(func() (string, error) {
		values := make([]any, len(args))
		for i, arg := range args {
			t, ok := arg.(Text)
			if !ok {
				values[i] = arg
				continue
			}
			s, err := t.AsString()
			if err != nil {
				return "", err
			}
			values[i] = s
		}
		return fmt.Sprintf(format, values...), nil
	})
}
