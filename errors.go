package fund

import "errors"

// Structural errors returned by Recompute. Business anomalies are reported
// as Issues by Validate and never as errors.
var (
	ErrInvalidWindow = errors.New("fund: invalid window")
	ErrInvalidLeg    = errors.New("fund: invalid leg")
	ErrInvalidPolicy = errors.New("fund: invalid policy")
)
