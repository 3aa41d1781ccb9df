package mathx

import "errors"

// Domain violations are returned as distinguished errors rather than
// producing silent garbage, per the library's coarse error taxonomy: a
// divide-by-zero, a negative exponent, or a negative square-root operand
// is a contract violation at the call site, not a value the library can
// recover from.
var (
	ErrDivByZero           = errors.New("mathx: division by zero")
	ErrNegativeExponent    = errors.New("mathx: negative exponent")
	ErrNegativeSqrtOperand = errors.New("mathx: square root of negative value")
	ErrInvalidScalar       = errors.New("mathx: invalid numeric string")
)
