// Package d provides the programmer-error assertion helpers used throughout
// microkelvin. Chk panics unconditionally on a failed assertion; Exp panics
// with a recoverable error that Try can catch. Both are backed by
// testify/assert so call sites read like ordinary test assertions.
package d

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

var (
	// Chk asserts invariants that must never fail outside of a programming
	// mistake. A failed Chk assertion panics and is not meant to be
	// recovered by callers.
	Chk = assert.New(&panicker{})
	// Exp asserts invariants whose violation is reported to the caller of a
	// public API as a typed WalkerViolation. Failed Exp assertions panic
	// with a violation value that Try can recover.
	Exp = assert.New(&recoverablePanicker{})
)

type panicker struct{}

func (panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

type recoverablePanicker struct{}

func (recoverablePanicker) Errorf(format string, args ...interface{}) {
	panic(WalkerViolation{message: fmt.Sprintf(format, args...)})
}

// WalkerViolation is raised when a Walker or Compound implementation breaks
// its contract (e.g. returning Into for a leaf slot). It is a panic value,
// not an error return, because such violations are programmer mistakes
// rather than recoverable runtime conditions.
type WalkerViolation struct {
	message string
}

func (w WalkerViolation) Error() string { return w.message }

func (w WalkerViolation) String() string { return w.message }

// Try runs fn and recovers any WalkerViolation panic raised through Exp,
// returning it as an error. Panics of any other kind propagate unchanged.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if wv, ok := r.(WalkerViolation); ok {
				err = wv
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
