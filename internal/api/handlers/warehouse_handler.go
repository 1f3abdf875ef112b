package handlers

import (
	"context"
	"net/http"
	"time"

	"crisis-supply-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WarehouseHandler struct {
	DB *mongo.Database
}

type AddressRequest struct {
	FullText  string  `json:"fullText" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type CreateWarehouseRequest struct {
	WarehouseID string         `json:"warehouseID" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	Status      string         `json:"status"`
	Address     AddressRequest `json:"address" binding:"required"`
}

// CreateWarehouse creates a new warehouse record.
func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("warehouses")

	count, err := collection.CountDocuments(context.Background(), bson.M{"warehouseID": req.WarehouseID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for warehouse"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Warehouse with this ID already exists"})
		return
	}

	status := req.Status
	if status == "" {
		status = "ACTIVE"
	}

	newWarehouse := models.Warehouse{
		WarehouseID: req.WarehouseID,
		Name:        req.Name,
		Status:      status,
		Address: models.Address{
			FullText:  req.Address.FullText,
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result, err := collection.InsertOne(context.Background(), newWarehouse)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create warehouse"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newWarehouse.ID = oid
	}

	c.JSON(http.StatusCreated, newWarehouse)
}

// GetAllWarehouses lists the warehouse directory.
func (h *WarehouseHandler) GetAllWarehouses(c *gin.Context) {
	collection := h.DB.Collection("warehouses")

	cursor, err := collection.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query warehouses"})
		return
	}
	defer cursor.Close(context.Background())

	var warehouses []models.Warehouse
	if err = cursor.All(context.Background(), &warehouses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode warehouses"})
		return
	}

	if warehouses == nil {
		warehouses = []models.Warehouse{}
	}

	c.JSON(http.StatusOK, warehouses)
}

// GetWarehouseByID looks a warehouse up by its warehouseID.
func (h *WarehouseHandler) GetWarehouseByID(c *gin.Context) {
	warehouseID := c.Param("id")

	collection := h.DB.Collection("warehouses")
	var warehouse models.Warehouse
	err := collection.FindOne(context.Background(), bson.M{"warehouseID": warehouseID}).Decode(&warehouse)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Warehouse not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve warehouse"})
		}
		return
	}

	c.JSON(http.StatusOK, warehouse)
}

// UpdateWarehouse updates name, status and address of a warehouse.
func (h *WarehouseHandler) UpdateWarehouse(c *gin.Context) {
	warehouseID := c.Param("id")

	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("warehouses")
	_, err := collection.UpdateOne(context.Background(), bson.M{"warehouseID": warehouseID}, bson.M{"$set": bson.M{
		"name":      req.Name,
		"status":    req.Status,
		"address":   req.Address,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update warehouse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Warehouse updated successfully"})
}

// DeleteWarehouse removes a warehouse record.
func (h *WarehouseHandler) DeleteWarehouse(c *gin.Context) {
	warehouseID := c.Param("id")

	collection := h.DB.Collection("warehouses")
	_, err := collection.DeleteOne(context.Background(), bson.M{"warehouseID": warehouseID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete warehouse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Warehouse deleted successfully"})
}
