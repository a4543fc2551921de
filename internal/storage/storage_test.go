package storage

import (
	"bytes"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	if _, err := s.Load("cart"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := s.Save("cart", []byte(`[{"productId":1}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := s.Load("cart")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"productId":1}]`)) {
		t.Fatalf("unexpected blob %s", got)
	}

	// wholesale overwrite
	if err := s.Save("cart", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = s.Load("cart")
	if string(got) != `[]` {
		t.Fatalf("expected overwritten blob, got %s", got)
	}

	if err := s.Delete("cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Load("cart"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryLoadReturnsCopy(t *testing.T) {
	s := NewMemory()
	s.Save("user", []byte(`{"id":1}`))

	got, _ := s.Load("user")
	got[0] = 'X'

	fresh, _ := s.Load("user")
	if string(fresh) != `{"id":1}` {
		t.Fatalf("stored blob was mutated through the returned slice: %s", fresh)
	}
}

func TestFileRoundTrip(t *testing.T) {
	s, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if _, err := s.Load("session"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Save("session", []byte(`{"id":7,"role":"admin"}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := s.Load("session")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != `{"id":7,"role":"admin"}` {
		t.Fatalf("unexpected blob %s", got)
	}

	if err := s.Save("session", []byte(`{"id":7,"role":"customer"}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = s.Load("session")
	if string(got) != `{"id":7,"role":"customer"}` {
		t.Fatalf("expected overwritten blob, got %s", got)
	}

	if err := s.Delete("session"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// deleting a missing key is not an error
	if err := s.Delete("session"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := first.Save("cart", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := second.Load("cart")
	if err != nil {
		t.Fatalf("load after reopen failed: %v", err)
	}
	if string(got) != `[1,2,3]` {
		t.Fatalf("unexpected blob after reopen: %s", got)
	}
}
