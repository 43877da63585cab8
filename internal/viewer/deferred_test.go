package viewer

import (
	"context"
	"errors"
	"testing"
)

func TestDeferredResolvesOnce(t *testing.T) {
	calls := 0
	d := NewDeferred("editor", "placeholder", func(ctx context.Context) (string, error) {
		calls++
		return "loaded", nil
	})

	if d.Resolved() {
		t.Fatal("must not resolve before first Get")
	}
	if d.Value() != "placeholder" {
		t.Errorf("expected placeholder while pending, got %q", d.Value())
	}

	for i := 0; i < 3; i++ {
		v, err := d.Get(context.Background())
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != "loaded" {
			t.Errorf("expected loaded, got %q", v)
		}
	}
	if calls != 1 {
		t.Errorf("load function ran %d times, want 1", calls)
	}
	if d.Value() != "loaded" {
		t.Errorf("expected resolved value, got %q", d.Value())
	}
}

func TestDeferredCachesFailure(t *testing.T) {
	calls := 0
	loadErr := errors.New("module missing")
	d := NewDeferred("editor", "placeholder", func(ctx context.Context) (string, error) {
		calls++
		return "", loadErr
	})

	for i := 0; i < 2; i++ {
		if _, err := d.Get(context.Background()); !errors.Is(err, loadErr) {
			t.Fatalf("expected load error, got %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("load function ran %d times, want 1", calls)
	}
	if d.Value() != "placeholder" {
		t.Errorf("failed load should keep the placeholder, got %q", d.Value())
	}
}
