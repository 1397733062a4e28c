package timeutil

import (
	"testing"
	"time"

	"backcore/pkg/domain"
)

var anchor = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestRelativeBuckets(t *testing.T) {
	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"future", -time.Hour, "just now"},
		{"seconds", 30 * time.Second, "just now"},
		{"one minute", time.Minute, "1 minute ago"},
		{"minutes", 45 * time.Minute, "45 minutes ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
		{"days", 49 * time.Hour, "2 days ago"},
		{"weeks", 8 * 24 * time.Hour, "1 week ago"},
		{"months", 10 * 7 * 24 * time.Hour, "2 months ago"},
		{"years", 800 * 24 * time.Hour, "2 years ago"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Relative(anchor.Add(-c.ago), anchor); got != c.want {
				t.Fatalf("Relative = %q, want %q", got, c.want)
			}
		})
	}
}

func TestTouch(t *testing.T) {
	created := Touch(domain.Base{ID: "x"}, false, anchor)
	if !created.CreatedAt.Equal(anchor) || !created.UpdatedAt.Equal(anchor) {
		t.Fatalf("create stamp = %+v", created)
	}

	later := anchor.Add(time.Hour)
	updated := Touch(created, true, later)
	if !updated.CreatedAt.Equal(anchor) {
		t.Fatalf("update changed CreatedAt to %s", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Fatalf("update did not refresh UpdatedAt: %s", updated.UpdatedAt)
	}
}

func TestIsRecent(t *testing.T) {
	if !IsRecent(anchor.Add(-23*time.Hour), anchor) {
		t.Fatalf("23h ago not recent")
	}
	if IsRecent(anchor.Add(-25*time.Hour), anchor) {
		t.Fatalf("25h ago recent")
	}
	if IsRecent(anchor.Add(time.Minute), anchor) {
		t.Fatalf("future instant recent")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		span time.Duration
		want string
	}{
		{-time.Minute, "0 seconds"},
		{time.Second, "1 second"},
		{90 * time.Second, "1 minute"},
		{2 * time.Hour, "2 hours"},
		{72 * time.Hour, "3 days"},
	}
	for _, c := range cases {
		if got := FormatDuration(anchor, anchor.Add(c.span)); got != c.want {
			t.Fatalf("FormatDuration(%s) = %q, want %q", c.span, got, c.want)
		}
	}
}

func TestTimestampIsUTC(t *testing.T) {
	stamp := Timestamp()
	parsed, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		t.Fatalf("Timestamp %q not RFC3339: %v", stamp, err)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("Timestamp %q not UTC", stamp)
	}
}
