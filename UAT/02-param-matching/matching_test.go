package matching_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/verifake/verifake"
	matching "github.com/verifake/verifake/UAT/02-param-matching"
)

// TestGauge_AppliesPositionalMatchers verifies that each registered matcher
// applies to its own parameter position for exactly one verified call.
func TestGauge_AppliesPositionalMatchers(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	fake := matching.NewGauge_Fake()

	fake.Adjust(2.5, "load spike")

	verifake.Verify(fake, func() {
		verifake.VerifyParams(fake,
			verifake.Satisfies(func(delta float64) bool { return delta > 0 }),
			verifake.MatchAny,
		)
		fake.Adjust(0, "")
	})

	g.Expect(fake.ParamMatchers).To(HaveLen(1))
	g.Expect(fake.Invocations).To(BeEmpty())
}

// TestGauge_ExpandsSingleMatcherAcrossParameters verifies that one registered
// matcher covers every position of a multi-parameter operation.
func TestGauge_ExpandsSingleMatcherAcrossParameters(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	fake := matching.NewGauge_Fake()

	fake.Adjust(1.5, "warmup")

	g.Expect(func() {
		verifake.Verify(fake, func() {
			verifake.VerifyIgnoreParams(fake)
			fake.Adjust(99, "anything")
		})
	}).NotTo(Panic())
}

// TestGauge_RejectsWrongMatcherCount verifies the message when the matcher
// list cannot cover the operation's parameters.
func TestGauge_RejectsWrongMatcherCount(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	fake := matching.NewGauge_Fake()

	fake.Set(5)

	g.Expect(func() {
		verifake.Verify(fake, func() {
			verifake.VerifyParams(fake, verifake.MatchAny, verifake.MatchAny)
			fake.Set(5)
		})
	}).To(PanicWith("Expected 1 parameter matchers, but got 2 instead"))
}

// TestGauge_MatchesVariadicArgumentsAsSlices verifies that a variadic
// parameter records as one slice argument and compares by deep equality.
func TestGauge_MatchesVariadicArgumentsAsSlices(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	fake := matching.NewGauge_Fake()

	fake.Pulse(1, 2, 3)

	g.Expect(fake.Invocations[0].Args).To(Equal([]any{[]int{1, 2, 3}}))

	g.Expect(func() {
		verifake.Verify(fake, func() { fake.Pulse(1, 2) })
	}).To(PanicWith("Expected argument times to match [1 2], but got [1 2 3] instead"))
}

// TestGauge_ResetsMatchersAfterOneVerifiedCall verifies that a registration
// is consumed by a single call and the default equality matcher returns.
func TestGauge_ResetsMatchersAfterOneVerifiedCall(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	fake := matching.NewGauge_Fake()

	fake.Set(1)
	fake.Set(2)

	g.Expect(func() {
		verifake.Verify(fake, func() {
			verifake.VerifyIgnoreParams(fake)
			fake.Set(7) // accepted by MatchAny
			fake.Set(3) // back on equality, 3 != 2
		})
	}).To(PanicWith("Expected argument level to match 3, but got 2 instead"))
}
