// Package model defines the domain types shared across tally.
package model

import "time"

// Category is an expense classification with its display metadata.
// ID is the primary key and never changes after creation. Icon is an
// opaque identifier resolved by the presentation layer.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// FallbackCategoryID is the protected category every ledger carries.
// Records whose category is removed without cascade are reassigned here.
const FallbackCategoryID = "others"

// Record is a single expense entry. Date is set at creation and never
// mutates; only Amount and CategoryID change across edits.
type Record struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	CategoryID string    `json:"categoryId"`
}

// DefaultCategories returns the built-in seed set used when no saved
// categories exist. The fallback category is always present.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "Food", Color: "#8B7355", Icon: "restaurant"},
		{ID: "daily", Name: "Daily", Color: "#9F8170", Icon: "cart"},
		{ID: "transport", Name: "Transport", Color: "#A67F59", Icon: "car"},
		{ID: "medical", Name: "Medical", Color: "#8B7E66", Icon: "hospital"},
		{ID: "entertainment", Name: "Entertainment", Color: "#B38B4D", Icon: "game"},
		{ID: FallbackCategoryID, Name: "Others", Color: "#8E8279", Icon: "tag"},
	}
}
