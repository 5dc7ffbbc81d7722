package lattice

import (
	"fmt"
	"strings"
)

type OutOfRange struct {
	K, MaxK int
}

func (e *OutOfRange) Error() string {
	if e.K <= 0 {
		return fmt.Sprintf("k should be greater than 0 (got %d)", e.K)
	}
	return fmt.Sprintf("k should be smaller than or equal to max_k=%d (got %d)", e.MaxK, e.K)
}

type UnknownCode struct {
	Table string
	Code  int32
}

func (e *UnknownCode) Error() string {
	return fmt.Sprintf("%s code %d was never encoded", e.Table, e.Code)
}

// ZeroSupport is returned when a confidence is requested for a condition
// that never occurs. Rule generation only asks about frequent itemsets so
// reaching this is a caller error.
type ZeroSupport struct {
	Condition []string
}

func (e *ZeroSupport) Error() string {
	return fmt.Sprintf("condition {%v} has zero support", strings.Join(e.Condition, ", "))
}

type NoTransactions struct{}

func (e *NoTransactions) Error() string {
	return "support is undefined for an empty transaction database"
}
