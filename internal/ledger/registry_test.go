package ledger

import (
	"errors"
	"testing"

	"tally/internal/model"
)

func TestRegistryDefaultsWhenEmpty(t *testing.T) {
	r := NewRegistry(nil)
	if !r.Has(model.FallbackCategoryID) {
		t.Fatal("fresh registry is missing the fallback category")
	}
	if got, want := len(r.List()), len(model.DefaultCategories()); got != want {
		t.Fatalf("default category count = %d, want %d", got, want)
	}
}

func TestRegistryRestoresFallback(t *testing.T) {
	// A corrupted snapshot without "others" must not leave reassignment
	// without a target.
	r := NewRegistry([]model.Category{
		{ID: "food", Name: "Food", Color: "#8B7355"},
	})
	if !r.Has(model.FallbackCategoryID) {
		t.Fatal("fallback category was not restored")
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry([]model.Category{
		{ID: "z", Name: "Zoo", Color: "#111111"},
		{ID: model.FallbackCategoryID, Name: "Others", Color: "#8E8279"},
		{ID: "a", Name: "Apples", Color: "#222222"},
	})

	got := r.List()
	if got[0].Name != "Apples" || got[1].Name != "Zoo" {
		t.Fatalf("list not alphabetical: %q, %q", got[0].Name, got[1].Name)
	}
	if got[len(got)-1].ID != model.FallbackCategoryID {
		t.Fatalf("fallback category not last, got %q", got[len(got)-1].ID)
	}
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry(nil)

	if err := r.Add(model.Category{ID: "coffee", Name: "Coffee", Color: "#6F4E37"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	tests := []struct {
		name string
		cat  model.Category
		want error
	}{
		{"duplicate id", model.Category{ID: "coffee", Name: "Again", Color: "#000000"}, ErrDuplicateID},
		{"missing name", model.Category{ID: "x", Color: "#000000"}, ErrInvalidCategory},
		{"missing color", model.Category{ID: "x", Name: "X"}, ErrInvalidCategory},
		{"missing id", model.Category{Name: "X", Color: "#000000"}, ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Add(tt.cat); !errors.Is(err, tt.want) {
				t.Fatalf("Add() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistryUpdate(t *testing.T) {
	r := NewRegistry(nil)

	if err := r.Update(model.Category{ID: "food", Name: "Eating out", Color: "#101010", Icon: "coffee"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := r.Get("food")
	if got.Name != "Eating out" || got.Color != "#101010" || got.Icon != "coffee" {
		t.Fatalf("Update() did not apply: %+v", got)
	}

	if err := r.Update(model.Category{ID: "food", Color: "#101010"}); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("empty name error = %v, want %v", err, ErrInvalidCategory)
	}
	if err := r.Update(model.Category{ID: "nope", Name: "N", Color: "#0"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id error = %v, want %v", err, ErrNotFound)
	}
}

func TestRegistryRemoveProtected(t *testing.T) {
	r := NewRegistry(nil)
	before := len(r.List())

	if err := r.Remove(model.FallbackCategoryID); !errors.Is(err, ErrProtectedCategory) {
		t.Fatalf("Remove(others) error = %v, want %v", err, ErrProtectedCategory)
	}
	if got := len(r.List()); got != before {
		t.Fatalf("category count changed: %d -> %d", before, got)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Remove("food"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if r.Has("food") {
		t.Fatal("category still present after Remove")
	}
	if err := r.Remove("food"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Remove error = %v, want %v", err, ErrNotFound)
	}
}
