package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"backcore/pkg/domain"
)

func TestEncodeDecodeBucket(t *testing.T) {
	seeded := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	src := Snapshot{
		Teams: []domain.Team{{
			Base:   domain.Base{ID: "team_1"},
			Name:   "Sales",
			Budget: decimal.NewFromInt(1000),
			Color:  domain.TeamColorBlue,
		}},
		Meta: domain.StoreMeta{Initialized: true, SeededAt: &seeded},
	}

	teams, err := EncodeBucket(src, BucketTeams)
	if err != nil {
		t.Fatalf("encode teams: %v", err)
	}
	meta, err := EncodeBucket(src, BucketMeta)
	if err != nil {
		t.Fatalf("encode meta: %v", err)
	}

	var dst Snapshot
	if err := DecodeBucket(&dst, BucketTeams, teams); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if err := DecodeBucket(&dst, BucketMeta, meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}

	if len(dst.Teams) != 1 || dst.Teams[0].ID != "team_1" {
		t.Fatalf("decoded teams = %+v", dst.Teams)
	}
	if !dst.Teams[0].Budget.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("decoded budget = %s", dst.Teams[0].Budget)
	}
	if dst.Meta.SeededAt == nil || !dst.Meta.SeededAt.Equal(seeded) {
		t.Fatalf("decoded meta = %+v", dst.Meta)
	}
}

func TestEncodeUnknownBucketFails(t *testing.T) {
	if _, err := EncodeBucket(Snapshot{}, "nope"); err == nil {
		t.Fatalf("encode of unknown bucket succeeded")
	}
}

func TestDecodeUnknownBucketIgnored(t *testing.T) {
	var dst Snapshot
	if err := DecodeBucket(&dst, "retired_bucket", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("decode of unknown bucket errored: %v", err)
	}
}

func TestDecodeCorruptPayloadErrors(t *testing.T) {
	var dst Snapshot
	if err := DecodeBucket(&dst, BucketUsers, []byte("{corrupt")); err == nil {
		t.Fatalf("corrupt payload decoded without error")
	}
}

func TestBucketNamesCoverEveryCollection(t *testing.T) {
	names := BucketNames()
	if len(names) != 13 {
		t.Fatalf("bucket count = %d, want 13", len(names))
	}
	if names[len(names)-1] != BucketMeta {
		t.Fatalf("meta bucket not last: %v", names)
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate bucket %q", n)
		}
		seen[n] = true
	}
}
