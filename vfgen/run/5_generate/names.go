package generate

// FakeSuffix is appended to an interface's simple name to form the name of
// its generated fake.
const FakeSuffix = "_Fake"

// DispatchFileName is the file the dispatch table is written to.
const DispatchFileName = "generated_Fakes.go"

// FakeTypeName returns the generated fake's type name.
func FakeTypeName(simpleName string) string {
	return simpleName + FakeSuffix
}

// ConstructorName returns the generated fake's constructor name.
func ConstructorName(simpleName string) string {
	return "New" + FakeTypeName(simpleName)
}

// FakeFileName returns the file one fake is written to. Fakes for
// annotations found in test files land in test files themselves, so they
// stay off the package's importable surface.
func FakeFileName(simpleName string, fromTestFile bool) string {
	if fromTestFile {
		return "generated_" + FakeTypeName(simpleName) + "_test.go"
	}

	return "generated_" + FakeTypeName(simpleName) + ".go"
}
