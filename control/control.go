// Package control sets socket options on listeners before they bind.
package control

// Options selects the socket options GetControl applies.
type Options struct {
	ReuseAddr bool
	ReusePort bool
}

func (o Options) IsZero() bool {
	return !o.ReuseAddr && !o.ReusePort
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
