// Package testutil holds the layering checks shared by package tests. The
// repository keeps pkg/domain free of internal imports; these helpers scan a
// package's source imports and the module's dependency graph against a
// forbidden-path predicate.
package testutil

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// InternalPackage reports whether path addresses a package inside an
// internal/ tree.
func InternalPackage(path string) bool {
	return strings.Contains(path, "/internal/")
}

// DomainPackage reports whether path addresses the domain package itself
// (with or without a module version suffix).
func DomainPackage(path string) bool {
	return strings.HasSuffix(path, "/pkg/domain") || strings.Contains(path, "/pkg/domain@")
}

// ImportViolations parses the imports of every non-test .go file directly in
// dir and returns the paths matching forbidden, each tagged with the file it
// appears in. Subdirectories and build tags are not considered.
func ImportViolations(dir string, forbidden func(path string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	fset := token.NewFileSet()
	var violations []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		parsed, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for _, imp := range parsed.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				return nil, fmt.Errorf("import path %s in %s: %w", imp.Path.Value, name, err)
			}
			if forbidden(path) {
				violations = append(violations, fmt.Sprintf("%s (%s)", path, name))
			}
		}
	}
	return violations, nil
}

// AssertNoDirectImports fails t when any non-test file in dir imports a path
// matching forbidden.
func AssertNoDirectImports(t testing.TB, dir string, forbidden func(path string) bool, reason string) {
	t.Helper()
	violations, err := ImportViolations(dir, forbidden)
	if err != nil {
		t.Fatalf("scan imports: %v", err)
	}
	if len(violations) > 0 {
		t.Fatalf("forbidden imports (%s):\n%s", reason, strings.Join(violations, "\n"))
	}
}

// AssertNoTransitiveDependency fails t when `go list -deps pattern` reports a
// dependency path matching forbidden.
func AssertNoTransitiveDependency(t testing.TB, pattern string, forbidden func(path string) bool, reason string) {
	t.Helper()
	out, err := exec.Command("go", "list", "-deps", pattern).CombinedOutput()
	if err != nil {
		t.Fatalf("go list -deps %s: %v\n%s", pattern, err, out)
	}
	var violations []string
	for _, dep := range strings.Fields(string(out)) {
		if forbidden(dep) {
			violations = append(violations, dep)
		}
	}
	if len(violations) > 0 {
		t.Fatalf("forbidden dependencies (%s):\n%s", reason, strings.Join(violations, "\n"))
	}
}
