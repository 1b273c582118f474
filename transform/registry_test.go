package transform_test

import (
	"testing"

	"github.com/cocosip/go-dct-engine/transform"

	_ "github.com/cocosip/go-dct-engine/dct1d"
)

func TestCoreRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
	}{
		{"Get matrix core", "matrix", true},
		{"Get reference core", "reference", true},
		{"Get non-existent core", "non-existent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := transform.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Fatalf("Get(%q) unexpected error: %v", tt.key, err)
				}
				core, err := factory(transform.Config{N: 8, FractBits: 14, OutputBits: 10})
				if err != nil {
					t.Fatalf("factory(%q) failed: %v", tt.key, err)
				}
				if core.Name() != tt.key {
					t.Errorf("Name() = %q, want %q", core.Name(), tt.key)
				}
			} else {
				if err != transform.ErrCoreNotFound {
					t.Errorf("Get(%q) error = %v, want ErrCoreNotFound", tt.key, err)
				}
			}
		})
	}
}

func TestRegistryList(t *testing.T) {
	names := transform.List()

	found := make(map[string]bool)
	for _, name := range names {
		found[name] = true
	}
	for _, want := range []string{"matrix", "reference"} {
		if !found[want] {
			t.Errorf("List() missing %q, got %v", want, names)
		}
	}
}

func TestLocalRegistry(t *testing.T) {
	r := transform.NewRegistry()

	if _, err := r.Get("anything"); err != transform.ErrCoreNotFound {
		t.Fatalf("empty registry Get error = %v, want ErrCoreNotFound", err)
	}

	r.Register("stub", func(cfg transform.Config) (transform.Core, error) {
		return nil, transform.ErrInvalidBlockSize
	})
	factory, err := r.Get("stub")
	if err != nil {
		t.Fatalf("Get(stub) failed: %v", err)
	}
	if _, err := factory(transform.Config{}); err != transform.ErrInvalidBlockSize {
		t.Errorf("stub factory error = %v, want ErrInvalidBlockSize", err)
	}
	if got := len(r.List()); got != 1 {
		t.Errorf("List() length = %d, want 1", got)
	}
}
