package css

import "errors"

// ErrDuplicateFragment is returned when a second element, id or
// pseudo-element is appended to the same builder. Branch with errors.Is -
// the actual error carries the fragment value for context.
var ErrDuplicateFragment = errors.New("css: duplicate selector fragment")

// ErrOrderViolation is returned when a fragment is appended after a
// fragment of a higher canonical rank has already been appended.
// Branch with errors.Is.
var ErrOrderViolation = errors.New("css: selector fragment out of order")
