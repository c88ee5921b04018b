package generate_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	detect "github.com/verifake/verifake/vfgen/run/3_detect"
	generate "github.com/verifake/verifake/vfgen/run/5_generate"
)

// TestFakeFile_RendersIdenticalBytes_Property proves one interface always
// renders to the same bytes, whatever shape its operations take.
func TestFakeFile_RendersIdenticalBytes_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		iface := drawInterface(rt)

		first, err := generate.FakeFile(iface, detect.Introspect(iface))
		if err != nil {
			rt.Fatalf("first render: %v", err)
		}

		second, err := generate.FakeFile(iface, detect.Introspect(iface))
		if err != nil {
			rt.Fatalf("second render: %v", err)
		}

		if !bytes.Equal(first, second) {
			rt.Fatalf("renders differ:\n%s\n---\n%s", first, second)
		}
	})
}

// TestDispatchFile_IgnoresDiscoveryOrder_Property proves the rendered table
// depends only on the entry set, not on the order fakes were generated in.
func TestDispatchFile_IgnoresDiscoveryOrder_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 6).Draw(rt, "count")

		entries := make([]generate.Entry, count)

		for i := 0; i < count; i++ {
			simple := rapid.StringMatching(`[A-Z][a-z]{0,4}`).Draw(rt, fmt.Sprintf("name%d", i))
			pkg := fmt.Sprintf("pkg%d", i)

			entries[i] = generate.Entry{
				Key:         testModulePath + "/" + pkg + "." + simple,
				PkgPath:     testModulePath + "/" + pkg,
				PkgName:     pkg,
				Constructor: "New" + simple + "_Fake",
			}
		}

		forward, err := generate.DispatchFile(entries, "fakes", testModulePath+"/fakes")
		if err != nil {
			rt.Fatalf("forward render: %v", err)
		}

		reversed := make([]generate.Entry, count)
		for i, entry := range entries {
			reversed[count-1-i] = entry
		}

		backward, err := generate.DispatchFile(reversed, "fakes", testModulePath+"/fakes")
		if err != nil {
			rt.Fatalf("reversed render: %v", err)
		}

		if !bytes.Equal(forward, backward) {
			rt.Fatalf("entry order changed the table:\n%s\n---\n%s", forward, backward)
		}
	})
}

// drawInterface builds a random single-interface package and returns its
// resolved view: 1-4 operations mixing parameter counts, variadics, and
// unverifiable result lists.
func drawInterface(rt *rapid.T) detect.ResolvedInterface {
	methodCount := rapid.IntRange(1, 4).Draw(rt, "methods")

	var source strings.Builder

	source.WriteString("package propcheck\n\ntype Thing interface {\n")

	for m := 0; m < methodCount; m++ {
		paramCount := rapid.IntRange(0, 3).Draw(rt, fmt.Sprintf("params%d", m))
		prefix := rapid.SampledFrom([]string{"x", "val", "item"}).Draw(rt, fmt.Sprintf("prefix%d", m))

		var params []string

		for p := 0; p < paramCount; p++ {
			kind := rapid.SampledFrom([]string{"string", "int", "bool", "float64", "[]byte"}).
				Draw(rt, fmt.Sprintf("type%d_%d", m, p))

			if p == paramCount-1 && rapid.Bool().Draw(rt, fmt.Sprintf("variadic%d", m)) {
				kind = "..." + kind
			}

			params = append(params, fmt.Sprintf("%s%d %s", prefix, p, kind))
		}

		result := ""
		if rapid.Bool().Draw(rt, fmt.Sprintf("result%d", m)) {
			result = " int"
		}

		fmt.Fprintf(&source, "\tM%d(%s)%s\n", m, strings.Join(params, ", "), result)
	}

	source.WriteString("}\n")

	return interfaceIn(rt, "Thing", source.String())
}
