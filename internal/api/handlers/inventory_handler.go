package handlers

import (
	"context"
	"net/http"

	"crisis-supply-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type InventoryHandler struct {
	DB *mongo.Database
}

// GetInventory returns the full catalog, optionally filtered by category.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	collection := h.DB.Collection("inventory")
	cursor, err := collection.Find(context.Background(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query inventory"})
		return
	}
	defer cursor.Close(context.Background())

	var items []models.InventoryItem
	if err = cursor.All(context.Background(), &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode inventory"})
		return
	}

	if items == nil {
		items = []models.InventoryItem{}
	}

	c.JSON(http.StatusOK, items)
}

// GetInventoryByLocation returns the catalog slice of one warehouse.
func (h *InventoryHandler) GetInventoryByLocation(c *gin.Context) {
	location := c.Param("name")

	collection := h.DB.Collection("inventory")
	cursor, err := collection.Find(context.Background(), bson.M{"location": location})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query inventory"})
		return
	}
	defer cursor.Close(context.Background())

	var items []models.InventoryItem
	if err = cursor.All(context.Background(), &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode inventory"})
		return
	}

	if items == nil {
		items = []models.InventoryItem{}
	}

	c.JSON(http.StatusOK, items)
}
