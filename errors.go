package filingest

import "fmt"

// ErrConfiguration reports invalid chunking parameters. It is surfaced
// immediately and never silently corrected.
type ErrConfiguration struct {
	Message string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration: %s", e.Message)
}
