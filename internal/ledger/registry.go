package ledger

import (
	"sort"

	"tally/internal/model"
)

// Registry holds the set of valid categories. The fallback category
// ("others") is always present: it cannot be removed and its id cannot
// change, so every reassignment target exists.
type Registry struct {
	categories []model.Category
}

// NewRegistry builds a registry from an initial category set. An empty
// set falls back to the defaults, and the fallback category is restored
// if the stored set somehow lost it.
func NewRegistry(initial []model.Category) *Registry {
	if len(initial) == 0 {
		initial = model.DefaultCategories()
	}
	r := &Registry{categories: append([]model.Category(nil), initial...)}
	if _, ok := r.Get(model.FallbackCategoryID); !ok {
		r.categories = append(r.categories, model.Category{
			ID:    model.FallbackCategoryID,
			Name:  "Others",
			Color: "#8E8279",
			Icon:  "tag",
		})
	}
	return r
}

// List returns the categories sorted for display: the fallback category
// always last, the rest alphabetical by name.
func (r *Registry) List() []model.Category {
	out := append([]model.Category(nil), r.categories...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ID == model.FallbackCategoryID {
			return false
		}
		if out[j].ID == model.FallbackCategoryID {
			return true
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Get returns the category with the given id.
func (r *Registry) Get(id string) (model.Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Has reports whether a category with the given id exists.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Add inserts a new category. The id must be non-empty and unused, and
// name and color are required.
func (r *Registry) Add(c model.Category) error {
	if c.ID == "" || c.Name == "" || c.Color == "" {
		return ErrInvalidCategory
	}
	if r.Has(c.ID) {
		return ErrDuplicateID
	}
	r.categories = append(r.categories, c)
	return nil
}

// Update edits the name, color and icon of an existing category. The id
// identifies the target and is immutable.
func (r *Registry) Update(c model.Category) error {
	if c.Name == "" || c.Color == "" {
		return ErrInvalidCategory
	}
	for i := range r.categories {
		if r.categories[i].ID == c.ID {
			r.categories[i].Name = c.Name
			r.categories[i].Color = c.Color
			r.categories[i].Icon = c.Icon
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes a category. The fallback category is protected and the
// removal of an unknown id is reported so callers can surface it.
func (r *Registry) Remove(id string) error {
	if id == model.FallbackCategoryID {
		return ErrProtectedCategory
	}
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
