package assert

import "github.com/oomph-ac/cubesim/oerror"

// IsTrue panics with an invalid configuration error when ok is false. It guards invariants that
// callers are expected to have validated already.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(oerror.KindInvalidConfiguration, message, args...))
	}
}
