package verifake

import "reflect"

// Matcher reports whether an expected value (supplied at verification time)
// matches an actual value (captured when the call was recorded).
type Matcher func(expected, actual any) bool

// MatchEqual is the default matcher: deep equality between the expected and
// the recorded value.
func MatchEqual(expected, actual any) bool {
	return reflect.DeepEqual(expected, actual)
}

// MatchAny matches every value. VerifyIgnoreParams registers it once to
// accept all parameter positions of the next verified call.
func MatchAny(_, _ any) bool {
	return true
}

// Satisfies builds a Matcher from a predicate on the recorded value. The
// expected value is ignored; the match fails if the recorded value is not a T.
func Satisfies[T any](predicate func(T) bool) Matcher {
	return func(_, actual any) bool {
		value, ok := actual.(T)

		return ok && predicate(value)
	}
}
