package generate_test

import (
	"testing"

	. "github.com/onsi/gomega"

	detect "github.com/verifake/verifake/vfgen/run/3_detect"
	generate "github.com/verifake/verifake/vfgen/run/5_generate"
)

// recorderFakeWant pins the full rendered output for one representative
// interface: a zero-parameter operation, a multi-parameter operation, and
// the record/verify protocol between them.
const recorderFakeWant = `// Code generated by vfgen. DO NOT EDIT.

package shop

import (
	_fmt "fmt"

	_verifake "github.com/verifake/verifake"
)

// Recorder_Fake is a verifiable fake of Recorder: calls are recorded
// until verifying mode turns on, then checked against the log in order.
type Recorder_Fake struct {
	_verifake.Core
}

// NewRecorder_Fake returns a fake ready to record invocations.
func NewRecorder_Fake() *Recorder_Fake {
	return &Recorder_Fake{Core: _verifake.NewCore()}
}

var _ Recorder = (*Recorder_Fake)(nil)

// Begin implements Recorder.Begin by recording the call, or by
// verifying it against the recorded log once verifying mode turns on.
func (f *Recorder_Fake) Begin() {
	if !f.Verifying {
		f.Invocations = append(f.Invocations, _verifake.Invocation{Op: "example.com/mod/shop.Recorder.Begin", Args: []any{}})

		return
	}

	if len(f.Invocations) == 0 {
		panic("Expected an invocation, but got none instead")
	}

	recorded := f.Invocations[0]
	f.Invocations = f.Invocations[1:]

	if recorded.Op != "example.com/mod/shop.Recorder.Begin" {
		panic(_fmt.Sprintf("Expected an invocation of %s, but got %s instead", "example.com/mod/shop.Recorder.Begin", recorded.Op))
	}
}

// Note implements Recorder.Note by recording the call, or by
// verifying it against the recorded log once verifying mode turns on.
func (f *Recorder_Fake) Note(subject string, count int) {
	if !f.Verifying {
		f.Invocations = append(f.Invocations, _verifake.Invocation{Op: "example.com/mod/shop.Recorder.Note", Args: []any{subject, count}})

		return
	}

	if len(f.Invocations) == 0 {
		panic("Expected an invocation, but got none instead")
	}

	recorded := f.Invocations[0]
	f.Invocations = f.Invocations[1:]

	if recorded.Op != "example.com/mod/shop.Recorder.Note" {
		panic(_fmt.Sprintf("Expected an invocation of %s, but got %s instead", "example.com/mod/shop.Recorder.Note", recorded.Op))
	}

	matchers := f.ParamMatchers

	if len(matchers) == 1 {
		matchers = []_verifake.Matcher{matchers[0], matchers[0]}
	}

	if len(matchers) != 2 {
		panic(_fmt.Sprintf("Expected 2 parameter matchers, but got %d instead", len(matchers)))
	}

	args := []any{subject, count}

	for i, name := range []string{"subject", "count"} {
		if !matchers[i](args[i], recorded.Args[i]) {
			panic(_fmt.Sprintf("Expected argument %s to match %v, but got %v instead", name, args[i], recorded.Args[i]))
		}
	}

	f.ParamMatchers = []_verifake.Matcher{_verifake.MatchEqual}
}
`

func TestFakeFile_RendersRecordVerifyProtocol(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Recorder", `package shop

type Recorder interface {
	Begin()
	Note(subject string, count int)
}
`)

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(output)).To(Equal(recorderFakeWant))
}

func TestFakeFile_StubsOperationsWithResults(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Lookup", `package cache

type Lookup interface {
	Get(key string) (string, error)
	Drop(key string)
}
`)

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())

	text := string(output)

	g.Expect(text).To(ContainSubstring("// Get implements Lookup.Get and always panics: the fake"))
	g.Expect(text).To(ContainSubstring("func (f *Lookup_Fake) Get(key string) (string, error) {"))
	g.Expect(text).To(ContainSubstring(`panic("Only functions with return type Unit can be verified")`))
	g.Expect(text).To(ContainSubstring("func (f *Lookup_Fake) Drop(key string) {"))
	g.Expect(text).To(ContainSubstring(`Op: "example.com/mod/cache.Lookup.Drop"`))
	g.Expect(text).To(ContainSubstring(`_fmt "fmt"`))
}

func TestFakeFile_OmitsFmtWhenEveryOperationReturns(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Reader", `package cache

type Reader interface {
	Len() int
}
`)

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(output)).To(ContainSubstring(`_verifake "github.com/verifake/verifake"`))
	g.Expect(string(output)).NotTo(ContainSubstring("_fmt"))
}

func TestFakeFile_QualifiesForeignInterfaceTypes(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Feed", `package stock

type Quote struct {
	Bid int
}

type label struct{}

type Feed interface {
	Push(q Quote)
	Mark(tag label)
}
`)
	iface.TargetPkgPath = testModulePath + "/app"
	iface.TargetPkgName = "app"

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())

	text := string(output)

	g.Expect(text).To(ContainSubstring("package app\n"))
	g.Expect(text).To(ContainSubstring("\t\"example.com/mod/stock\"\n"))
	g.Expect(text).To(ContainSubstring("var _ stock.Feed = (*Feed_Fake)(nil)"))
	g.Expect(text).To(ContainSubstring("func (f *Feed_Fake) Push(q stock.Quote) {"))
	g.Expect(text).To(ContainSubstring(`Op: "example.com/mod/stock.Feed.Push"`))

	// Unexported names cannot be qualified from another package, so they
	// stay bare.
	g.Expect(text).To(ContainSubstring("func (f *Feed_Fake) Mark(tag label) {"))
}

func TestFakeFile_KeepsLeadingContextInSignature(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Notifier", `package notify

import "context"

type Notifier interface {
	Ping(ctx context.Context, target string)
}
`)

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())

	text := string(output)

	g.Expect(text).To(ContainSubstring("\t\"context\"\n"))
	g.Expect(text).To(ContainSubstring("func (f *Notifier_Fake) Ping(ctx context.Context, target string) {"))
	g.Expect(text).To(ContainSubstring("Args: []any{target}"))
	g.Expect(text).To(ContainSubstring("if len(matchers) != 1 {"))
	g.Expect(text).NotTo(ContainSubstring(`"ctx"`))
}

func TestFakeFile_CarriesSourceImportsForSignatureTypes(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Sink", `package sink

import "io"

type Sink interface {
	Copy(dst io.Writer, tags map[string]int)
	Stream(chunks ...[]byte)
}
`)

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())

	text := string(output)

	g.Expect(text).To(ContainSubstring("\t\"io\"\n"))
	g.Expect(text).To(ContainSubstring("func (f *Sink_Fake) Copy(dst io.Writer, tags map[string]int) {"))
	g.Expect(text).To(ContainSubstring("func (f *Sink_Fake) Stream(chunks ...[]byte) {"))

	// A variadic parameter records as one slice value.
	g.Expect(text).To(ContainSubstring("Args: []any{chunks}"))
}

func TestFakeFile_SkipsExpansionForSingleParameter(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Gauge", `package gauge

type Gauge interface {
	Set(level int)
}
`)

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(output)).To(ContainSubstring("if len(matchers) != 1 {"))
	g.Expect(string(output)).To(ContainSubstring("Expected 1 parameter matchers, but got %d instead"))
	g.Expect(string(output)).NotTo(ContainSubstring("matchers[0], matchers[0]"))
}

func TestFakeFile_InlinesRuntimeWhenPlacedInRuntimePackage(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	iface := interfaceIn(t, "Prober", `package verifake

type Prober interface {
	Probe(target string)
}
`)
	iface.PkgPath = generate.RuntimePath
	iface.TargetPkgPath = generate.RuntimePath
	iface.QualifiedName = generate.RuntimePath + ".Prober"

	output, err := generate.FakeFile(iface, detect.Introspect(iface))

	g.Expect(err).NotTo(HaveOccurred())

	text := string(output)

	g.Expect(text).NotTo(ContainSubstring("_verifake"))
	g.Expect(text).To(ContainSubstring("\tCore\n"))
	g.Expect(text).To(ContainSubstring("{Core: NewCore()}"))
	g.Expect(text).To(ContainSubstring("f.ParamMatchers = []Matcher{MatchEqual}"))
}
