package core

import "testing"

func TestSanitizeKey(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "invoices/2026/scan.pdf", "invoices/2026/scan.pdf", false},
		{"backslashes", `invoices\scan.pdf`, "invoices/scan.pdf", false},
		{"redundant segments", "invoices//./scan.pdf", "invoices/scan.pdf", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
		{"absolute", "/etc/passwd", "", true},
		{"traversal", "../secret", "", true},
		{"nested traversal", "a/../../secret", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := SanitizeKey(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("SanitizeKey(%q) accepted, got %q", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeKey(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("SanitizeKey(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCloneMetadata(t *testing.T) {
	if CloneMetadata(nil) != nil {
		t.Fatalf("clone of nil not nil")
	}
	src := map[string]string{"owner": "finance"}
	cp := CloneMetadata(src)
	cp["owner"] = "mutated"
	if src["owner"] != "finance" {
		t.Fatalf("clone shares storage with source")
	}
}
