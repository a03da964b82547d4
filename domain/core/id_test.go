package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
	if !ID("").IsEmpty() {
		t.Error("Empty ID should report IsEmpty")
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Errorf("Run IDs should differ, both were %s", a)
	}
	if len(a.String()) != 36 {
		t.Errorf("Expected canonical UUID string, got %q", a.String())
	}
}

func TestNewHash_Deterministic(t *testing.T) {
	h1 := NewHash([]byte("Expected Claim Cost = 2460.00\n"))
	h2 := NewHash([]byte("Expected Claim Cost = 2460.00\n"))
	if !h1.Equals(h2) {
		t.Fatalf("hash not deterministic: %s vs %s", h1, h2)
	}
	if h1.IsEmpty() || len(h1.String()) != 64 {
		t.Fatalf("expected 64 hex chars, got %q", h1)
	}
	if NewHash([]byte("a")).Equals(NewHash([]byte("b"))) {
		t.Fatal("different inputs produced the same hash")
	}
}
