package field

import "errors"

// ErrInvalidParameter is wrapped by every construction-time geometry
// validation failure. Evaluation never returns it.
var ErrInvalidParameter = errors.New("invalid parameter")
