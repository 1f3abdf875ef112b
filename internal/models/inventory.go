package models

// InventoryItem is one catalog entry of a warehouse location.
type InventoryItem struct {
	ID          int    `bson:"id" json:"id"`
	Location    string `bson:"location" json:"location"`
	Address     string `bson:"address" json:"address"`
	Product     string `bson:"product" json:"product"`
	Category    string `bson:"category" json:"category"`
	Available   int    `bson:"available" json:"available"`
	Unit        string `bson:"unit" json:"unit"`
	MinStock    int    `bson:"minStock" json:"minStock"`
	LastUpdated string `bson:"lastUpdated" json:"lastUpdated"` // YYYY-MM-DD

	// RequestedQuantity is set when the item is placed in a cart.
	// It is never stored in the catalog itself.
	RequestedQuantity int `bson:"-" json:"requestedQuantity,omitempty"`
}
