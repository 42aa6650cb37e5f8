package imgio

import "fmt"

// InvalidInputError reports an Input that carries neither a file path nor a
// byte buffer.
type InvalidInputError struct {
	ID string
}

func (e *InvalidInputError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("input %q: must be a file path or byte buffer", e.ID)
	}
	return "input must be a file path or byte buffer"
}
