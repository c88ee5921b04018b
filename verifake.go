// Package verifake provides the runtime protocol that vfgen-generated fakes
// use to record and verify calls.
//
// A generated fake starts in recording mode: every call appends an Invocation
// to its log and returns. Verify switches the fake into verifying mode and
// runs a check function; inside it, each call on the fake consumes the oldest
// recorded Invocation and asserts that it matches the call's operation and
// arguments, panicking on the first mismatch.
package verifake

// Invocation is one recorded call: the operation's fully qualified name and
// the captured argument values in declaration order.
type Invocation struct {
	Op   string
	Args []any
}

// Core is the verification state embedded in every generated fake. Generated
// method bodies manipulate the exported fields directly.
type Core struct {
	Invocations   []Invocation
	ParamMatchers []Matcher
	Verifying     bool
}

// NewCore returns the state of a fresh fake: an empty invocation log, the
// single default equality matcher, and recording mode.
func NewCore() Core {
	return Core{ParamMatchers: []Matcher{MatchEqual}}
}

// Fake returns the embedded verification state. It is the marker method that
// lets this package's functions accept any generated fake.
func (c *Core) Fake() *Core { return c }

// Verifiable is satisfied by every generated fake through its embedded Core.
type Verifiable interface {
	Fake() *Core
}
