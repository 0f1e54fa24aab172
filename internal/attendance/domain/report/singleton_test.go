package report

import (
	"errors"
	"testing"
)

func TestNewStore(t *testing.T) {
	if _, err := newStore(nil); !errors.Is(err, ErrNilDatabase) {
		t.Fatalf("expected ErrNilDatabase, got %v", err)
	}
	s, err := newStore(newTestDB(t))
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}
	if s.Repository == nil || s.Service == nil || s.Controller == nil {
		t.Fatalf("incomplete store: %+v", s)
	}
}
