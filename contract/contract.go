package contract

import (
	"fmt"
	"sync/atomic"
)

// Kind
type Kind string

const (
	Precondition  Kind = "precondition"
	Postcondition Kind = "postcondition"
)

// Violation
// Violation carries the diagnostic for a failed contract check. It is the
// panic value in ModePanic, so test harnesses can recover and inspect it.
type Violation struct {
	Kind Kind
	Msg  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("contract: %s violated: %s", v.Kind, v.Msg)
}

var active atomic.Pointer[Config]

func init() {
	active.Store(DefaultConfig())
}

// Require checks a caller-supplied precondition.
func Require(cond bool, format string, args ...any) {
	if !cond {
		report(Precondition, fmt.Sprintf(format, args...))
	}
}

// Ensure checks an internal postcondition.
func Ensure(cond bool, format string, args ...any) {
	if !cond {
		report(Postcondition, fmt.Sprintf(format, args...))
	}
}

// CurrentMode returns the active reporting mode.
func CurrentMode() Mode {
	return active.Load().Mode
}

// report routes a violation through the policy selected at init. There is
// no recoverable path: either the process ends or the violation unwinds as
// a panic.
func report(kind Kind, msg string) {
	cfg := active.Load()
	v := &Violation{Kind: kind, Msg: msg}
	if cfg.Mode == ModePanic {
		panic(v)
	}
	cfg.Logger.WithField("kind", string(kind)).Fatal(v.Error())
}
