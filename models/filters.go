package models

// PriceModel is one selectable pricing option in listing filters.
type PriceModel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions describes the selectable filter values shared across listing
// views. Fields are optional so partial option sets can be merged with the
// defaults.
type FilterOptions struct {
	Services      []string     `json:"services,omitempty"`
	ProjectTypes  []string     `json:"projectTypes,omitempty"`
	IncludedItems []string     `json:"includedItems,omitempty"`
	AreasOfWork   []string     `json:"areasOfWork,omitempty"`
	PriceModels   []PriceModel `json:"priceModels,omitempty"`
	Categories    []string     `json:"categories,omitempty"`
}

// DefaultPriceModels returns the built-in pricing options.
func DefaultPriceModels() []PriceModel {
	return []PriceModel{
		{Value: "fixed", Label: "Fixed Price"},
		{Value: "unit", Label: "Unit Based"},
		{Value: "rfq", Label: "Request for Quote"},
	}
}
