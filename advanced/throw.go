package advanced

import "github.com/pkg/errors"

// The recursion has no error conditions of its own, and threading errors
// through it for the few programmer errors it can detect (bad anchor indices,
// mismatched accumulators) would only add noise. Instead, we panic, and the
// public API recovers to convert to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError(errors.Errorf(format, args...)))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
