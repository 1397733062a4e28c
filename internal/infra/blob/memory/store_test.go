package memory

import (
	"bytes"
	"context"
	"io"
	"testing"

	"backcore/internal/blob/core"
)

func TestPutGetRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	payload := []byte("receipt scan")
	info, err := s.Put(ctx, "receipts/jan.png", bytes.NewReader(payload), core.PutOptions{
		ContentType: "image/png",
		Metadata:    map[string]string{"uploader": "ops"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != int64(len(payload)) || info.ETag == "" {
		t.Fatalf("put info = %+v", info)
	}

	got, rc, err := s.Get(ctx, "receipts/jan.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = rc.Close() }()
	body, _ := io.ReadAll(rc)
	if !bytes.Equal(body, payload) {
		t.Fatalf("body = %q", body)
	}
	if got.ContentType != "image/png" || got.Metadata["uploader"] != "ops" {
		t.Fatalf("get info = %+v", got)
	}
}

func TestPutRejectsExistingKey(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Put(ctx, "a.txt", bytes.NewReader([]byte("one")), core.PutOptions{}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if _, err := s.Put(ctx, "a.txt", bytes.NewReader([]byte("two")), core.PutOptions{}); err == nil {
		t.Fatalf("overwrite accepted")
	}
}

func TestGetReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Put(ctx, "c.txt", bytes.NewReader([]byte("abc")), core.PutOptions{
		Metadata: map[string]string{"k": "v"},
	}); err != nil {
		t.Fatalf("put: %v", err)
	}

	info, rc, err := s.Get(ctx, "c.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = rc.Close()
	info.Metadata["k"] = "mutated"

	again, err := s.Head(ctx, "c.txt")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if again.Metadata["k"] != "v" {
		t.Fatalf("stored metadata mutated through returned copy")
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Put(ctx, "d.txt", bytes.NewReader([]byte("x")), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	existed, err := s.Delete(ctx, "d.txt")
	if err != nil || !existed {
		t.Fatalf("delete = %v, %v", existed, err)
	}
	existed, err = s.Delete(ctx, "d.txt")
	if err != nil || existed {
		t.Fatalf("second delete = %v, %v", existed, err)
	}
}

func TestListFiltersByPrefixAndSorts(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, key := range []string{"b/2.txt", "b/1.txt", "a/1.txt"} {
		if _, err := s.Put(ctx, key, bytes.NewReader([]byte(key)), core.PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}

	infos, err := s.List(ctx, "b/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "b/1.txt" || infos[1].Key != "b/2.txt" {
		t.Fatalf("list = %+v", infos)
	}
}

func TestPresignURLUnsupported(t *testing.T) {
	s := New()
	if _, err := s.PresignURL(context.Background(), "a.txt", core.SignedURLOptions{}); err != core.ErrUnsupported {
		t.Fatalf("presign err = %v, want ErrUnsupported", err)
	}
}
