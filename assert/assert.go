package assert

import "github.com/oomph-ac/strafe/oerror"

// Debug enables assertions. When false, failed assertions are left to the caller to report.
var Debug = false

// IsTrue panics with the formatted message if ok is false and Debug is set.
func IsTrue(ok bool, message string, args ...any) {
	if !ok && Debug {
		panic(oerror.New(message, args...))
	}
}
