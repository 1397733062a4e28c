package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInternalPackage(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"backcore/internal/core", true},
		{"backcore/internal/infra/persistence/memory", true},
		{"backcore/pkg/domain", false},
		{"internal", false},
		{"backcore/internal", false},
		{"notinternal/pkg", false},
		{"", false},
	}
	for _, c := range cases {
		if got := InternalPackage(c.in); got != c.want {
			t.Errorf("InternalPackage(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDomainPackage(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"backcore/pkg/domain", true},
		{"backcore/pkg/domain@v1.2.3", true},
		{"backcore/pkg/domain/sub", false},
		{"backcore/pkg/domainutil", false},
		{"domain/pkg/other", false},
		{"", false},
	}
	for _, c := range cases {
		if got := DomainPackage(c.in); got != c.want {
			t.Errorf("DomainPackage(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func writeSource(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestImportViolationsReportsForbiddenPaths(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "leaky.go", `package tmp

import (
	"fmt"
	_ "backcore/internal/core"
)

func X() { fmt.Println() }
`)

	violations, err := ImportViolations(dir, InternalPackage)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("violations = %v, want one", violations)
	}
	if violations[0] != "backcore/internal/core (leaky.go)" {
		t.Fatalf("violation = %q", violations[0])
	}
}

func TestImportViolationsSkipsTestFilesAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "clean.go", "package tmp\n\nimport \"fmt\"\n\nfunc X() { fmt.Println() }\n")
	writeSource(t, dir, "leaky_test.go", "package tmp\n\nimport _ \"backcore/internal/core\"\n")
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSource(t, sub, "deep.go", "package sub\n\nimport _ \"backcore/internal/core\"\n")
	writeSource(t, dir, "notes.txt", "not go")

	violations, err := ImportViolations(dir, InternalPackage)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("violations = %v, want none", violations)
	}
}

func TestImportViolationsHandlesAliasedAndGroupedImports(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "styles.go", `package tmp

import (
	"fmt"
	ctx "context"
	. "io"
)

func X() { fmt.Println() }
`)

	violations, err := ImportViolations(dir, func(path string) bool { return path == "context" })
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("violations = %v, want aliased context import flagged", violations)
	}
}

func TestAssertNoDirectImportsPassesOnCleanDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "clean.go", "package tmp\n\nimport \"fmt\"\n\nfunc X() { fmt.Println() }\n")
	AssertNoDirectImports(t, dir, InternalPackage, "clean package must pass")
	AssertNoDirectImports(t, t.TempDir(), func(string) bool { return true }, "empty dir must pass")
}

func TestAssertNoTransitiveDependencyPassesWhenAbsent(t *testing.T) {
	AssertNoTransitiveDependency(t, ".", func(path string) bool {
		return path == "backcore/does/not/exist"
	}, "testutil must not depend on a nonexistent package")
}
