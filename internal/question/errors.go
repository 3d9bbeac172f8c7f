package question

import (
	"errors"
	"math"
)

// Outcome kinds. Service and request errors wrap exactly one of these so the
// HTTP layer can map them with errors.Is.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

func toInt32(v int) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}
