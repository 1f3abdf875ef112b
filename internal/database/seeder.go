package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"crisis-supply-api-server/internal/auth"
	"crisis-supply-api-server/internal/models"
)

// SeedUsers creates the default accounts if they do not exist yet.
func SeedUsers(db *mongo.Database) error {
	defaults := []struct {
		user     models.User
		password string
	}{
		{models.User{Email: "vorsitz@krisenstab.example", Name: "Karin Vogel", Role: "chairman", Organisation: "Krisenstab", Status: "active"}, "vorsitzpasswort"},
		{models.User{Email: "mitarbeiter@krisenstab.example", Name: "Jonas Brandt", Role: "employee", Organisation: "Krisenstab", Status: "active"}, "mitarbeiterpasswort"},
		{models.User{Email: "lager@krisenstab.example", Name: "Petra Ahrens", Role: "warehouse", Organisation: "Lagerverwaltung", Status: "active"}, "lagerpasswort"},
		{models.User{Email: "admin@krisenstab.example", Name: "Systemverwaltung", Role: "admin", Organisation: "IT", Status: "active"}, "adminpasswort"},
	}

	collection := db.Collection("users")
	for _, d := range defaults {
		count, err := collection.CountDocuments(context.Background(), bson.M{"email": d.user.Email})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := auth.HashPassword(d.password)
		if err != nil {
			return err
		}
		d.user.Password = hashed
		if _, err := collection.InsertOne(context.Background(), d.user); err != nil {
			return err
		}
		log.Printf("Seeded user %s (%s)", d.user.Email, d.user.Role)
	}
	return nil
}

// SeedWarehouses inserts the warehouse directory if the collection is empty.
func SeedWarehouses(db *mongo.Database) error {
	collection := db.Collection("warehouses")
	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	warehouses := []interface{}{
		models.Warehouse{WarehouseID: "lager-nord", Name: "Hauptlager Nord", Status: "ACTIVE",
			Address: models.Address{FullText: "Industriestraße 12, 13407 Berlin", Latitude: 52.5652, Longitude: 13.3701},
			CreatedAt: now, UpdatedAt: now},
		models.Warehouse{WarehouseID: "lager-sued", Name: "Lager Süd", Status: "ACTIVE",
			Address: models.Address{FullText: "Gewerbepark 3, 81379 München", Latitude: 48.0952, Longitude: 11.5310},
			CreatedAt: now, UpdatedAt: now},
		models.Warehouse{WarehouseID: "lager-west", Name: "Zentrallager West", Status: "ACTIVE",
			Address: models.Address{FullText: "Hafenweg 21, 50735 Köln", Latitude: 50.9915, Longitude: 6.9653},
			CreatedAt: now, UpdatedAt: now},
	}
	if _, err := collection.InsertMany(context.Background(), warehouses); err != nil {
		return err
	}
	log.Printf("Seeded %d warehouses", len(warehouses))
	return nil
}

// SeedInventory inserts the static catalog dataset if the collection is
// empty. Stock levels are display data; accepted requests do not decrement
// them.
func SeedInventory(db *mongo.Database) error {
	collection := db.Collection("inventory")
	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []interface{}{
		models.InventoryItem{ID: 1, Location: "Hauptlager Nord", Address: "Industriestraße 12, 13407 Berlin", Product: "Feldbetten", Category: "Unterkunft", Available: 240, Unit: "Stück", MinStock: 50, LastUpdated: "2025-08-18"},
		models.InventoryItem{ID: 2, Location: "Hauptlager Nord", Address: "Industriestraße 12, 13407 Berlin", Product: "Decken", Category: "Unterkunft", Available: 800, Unit: "Stück", MinStock: 200, LastUpdated: "2025-08-18"},
		models.InventoryItem{ID: 3, Location: "Hauptlager Nord", Address: "Industriestraße 12, 13407 Berlin", Product: "Zelte", Category: "Unterkunft", Available: 65, Unit: "Stück", MinStock: 20, LastUpdated: "2025-08-12"},
		models.InventoryItem{ID: 4, Location: "Hauptlager Nord", Address: "Industriestraße 12, 13407 Berlin", Product: "Notstromaggregate", Category: "Ausrüstung", Available: 14, Unit: "Stück", MinStock: 5, LastUpdated: "2025-07-30"},
		models.InventoryItem{ID: 5, Location: "Lager Süd", Address: "Gewerbepark 3, 81379 München", Product: "Wasserkanister 10L", Category: "Verpflegung", Available: 520, Unit: "Stück", MinStock: 150, LastUpdated: "2025-08-20"},
		models.InventoryItem{ID: 6, Location: "Lager Süd", Address: "Gewerbepark 3, 81379 München", Product: "Konservennahrung", Category: "Verpflegung", Available: 1900, Unit: "Paket", MinStock: 400, LastUpdated: "2025-08-20"},
		models.InventoryItem{ID: 7, Location: "Lager Süd", Address: "Gewerbepark 3, 81379 München", Product: "Trinkwasser", Category: "Verpflegung", Available: 3200, Unit: "Liter", MinStock: 1000, LastUpdated: "2025-08-21"},
		models.InventoryItem{ID: 8, Location: "Lager Süd", Address: "Gewerbepark 3, 81379 München", Product: "Taschenlampen", Category: "Ausrüstung", Available: 310, Unit: "Stück", MinStock: 80, LastUpdated: "2025-08-05"},
		models.InventoryItem{ID: 9, Location: "Zentrallager West", Address: "Hafenweg 21, 50735 Köln", Product: "Erste-Hilfe-Sets", Category: "Medizin", Available: 430, Unit: "Stück", MinStock: 100, LastUpdated: "2025-08-15"},
		models.InventoryItem{ID: 10, Location: "Zentrallager West", Address: "Hafenweg 21, 50735 Köln", Product: "Schutzmasken FFP2", Category: "Medizin", Available: 5000, Unit: "Stück", MinStock: 1500, LastUpdated: "2025-08-15"},
		models.InventoryItem{ID: 11, Location: "Zentrallager West", Address: "Hafenweg 21, 50735 Köln", Product: "Hygiene-Sets", Category: "Hygiene", Available: 740, Unit: "Paket", MinStock: 200, LastUpdated: "2025-08-17"},
		models.InventoryItem{ID: 12, Location: "Zentrallager West", Address: "Hafenweg 21, 50735 Köln", Product: "Sandsäcke", Category: "Ausrüstung", Available: 2600, Unit: "Stück", MinStock: 500, LastUpdated: "2025-08-02"},
	}
	if _, err := collection.InsertMany(context.Background(), items); err != nil {
		return err
	}
	log.Printf("Seeded %d inventory items", len(items))
	return nil
}
