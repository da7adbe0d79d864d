package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestNewULID(t *testing.T) {
	id := NewULID()
	if len(id) != ulid.EncodedSize {
		t.Errorf("NewULID() length = %d, want %d", len(id), ulid.EncodedSize)
	}
	if _, err := ulid.Parse(id); err != nil {
		t.Errorf("NewULID() produced unparsable id %q: %v", id, err)
	}
}

func TestNewULID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewULID()
		if seen[id] {
			t.Fatalf("NewULID() returned duplicate id %q", id)
		}
		seen[id] = true
	}
}
