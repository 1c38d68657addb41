package domain

// CatalogItem holds the descriptive fields shared by products, suggested
// products and purchased references.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Described reports whether name, description and image are all set.
func (c CatalogItem) Described() bool {
	return c.Name != "" && c.Description != "" && c.Image != ""
}
