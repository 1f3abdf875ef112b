package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a structured object for location information.
type Address struct {
	FullText  string  `bson:"fullText" json:"fullText"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type Warehouse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WarehouseID string             `bson:"warehouseID" json:"warehouseID"` // User-friendly unique ID, e.g. "lager-nord"
	Name        string             `bson:"name" json:"name"`               // e.g. "Hauptlager Nord"
	Address     Address            `bson:"address" json:"address"`
	Status      string             `bson:"status" json:"status"` // e.g. "ACTIVE", "INACTIVE", "FULL_CAPACITY"
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
