package verifake

import "fmt"

// PreconditionError reports misuse of the verification API itself, as
// opposed to a verification mismatch detected inside a generated fake.
type PreconditionError struct {
	Cause string
}

func (e *PreconditionError) Error() string {
	return "verifake: " + e.Cause
}

// Verify switches fake into verifying mode for the duration of check. Inside
// check, every call on the fake consumes and asserts against the oldest
// recorded invocation instead of recording a new one. The previous mode is
// restored when check returns, panicking or not.
//
// Verify panics with *PreconditionError if fake is not a generated fake.
func Verify(fake any, check func()) {
	core := coreOf(fake)

	previous := core.Verifying
	core.Verifying = true

	defer func() { core.Verifying = previous }()

	check()
}

// VerifyParams registers the matchers for the next verified call on fake.
// With exactly one matcher and a multi-parameter operation, that matcher is
// applied to every parameter position; otherwise one matcher per parameter
// is required and each applies positionally. The registration is consumed by
// exactly one verified call, which resets the fake to the default equality
// matcher.
//
// VerifyParams panics with *PreconditionError outside a Verify scope or when
// called without matchers.
func VerifyParams(fake any, matchers ...Matcher) {
	core := coreOf(fake)

	if !core.Verifying {
		panic(&PreconditionError{Cause: "VerifyParams called outside a Verify scope"})
	}

	if len(matchers) == 0 {
		panic(&PreconditionError{Cause: "VerifyParams called without matchers"})
	}

	core.ParamMatchers = matchers
}

// VerifyIgnoreParams registers a single MatchAny for the next verified call
// on fake, accepting its arguments regardless of what was recorded.
func VerifyIgnoreParams(fake any) {
	VerifyParams(fake, MatchAny)
}

// coreOf extracts the verification state from a generated fake.
func coreOf(fake any) *Core {
	verifiable, ok := fake.(Verifiable)
	if !ok {
		panic(&PreconditionError{Cause: fmt.Sprintf("expected a generated fake, but got %T instead", fake)})
	}

	return verifiable.Fake()
}
