package handlers

import (
	"errors"
	"net/http"

	"crisis-supply-api-server/internal/models"
	"crisis-supply-api-server/internal/request"
	"crisis-supply-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	Store *store.Store
}

type CreateRequestPayload struct {
	CartItems    []models.InventoryItem `json:"cartItems" binding:"required,dive"`
	Priority     string                 `json:"priority" binding:"required"`
	Deadline     string                 `json:"deadline" binding:"required"`
	Notes        string                 `json:"notes"`
	RequestedBy  string                 `json:"requestedBy" binding:"required"`
	Organisation string                 `json:"organisation" binding:"required"`
}

// CreateRequest turns a submitted cart into a new canonical request.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload CreateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meta := request.Meta{
		Priority:     request.Priority(payload.Priority),
		Deadline:     payload.Deadline,
		Notes:        payload.Notes,
		RequestedBy:  payload.RequestedBy,
		Organisation: payload.Organisation,
	}

	req, err := h.Store.AddRequest(payload.CartItems, meta)
	if err != nil {
		if errors.Is(err, request.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, req)
}

type UpdateStatusPayload struct {
	Status         string                           `json:"status" binding:"required"`
	Comment        string                           `json:"comment"`
	ArticleUpdates map[string]request.ArticleUpdate `json:"articleUpdates"`
}

// UpdateStatus applies a lifecycle transition to one request. The acting
// user is taken from the token claims.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	user := c.GetString("user_name")

	var payload UpdateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := h.Store.UpdateStatus(id, request.Status(payload.Status), payload.Comment, user, payload.ArticleUpdates)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errors.Is(err, request.ErrUnknownStatus),
			errors.Is(err, request.ErrUnknownArticle),
			errors.Is(err, request.ErrQuantityRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		}
		return
	}

	c.JSON(http.StatusOK, req)
}

// GetAllRequests returns the chairman/approver projection of every request.
func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ForChairman())
}

// GetMyRequests returns the requester projection, filtered to the calling
// user when the token names one.
func (h *RequestHandler) GetMyRequests(c *gin.Context) {
	requests := h.Store.ForEmployee()

	user := c.GetString("user_name")
	if user != "" {
		filtered := make([]request.EmployeeRequest, 0, len(requests))
		for _, r := range requests {
			if r.RequestedBy == user {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}

	c.JSON(http.StatusOK, requests)
}

// GetRequestByID returns the canonical record.
func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	req, ok := h.Store.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetCounts returns the dashboard badge figures.
func (h *RequestHandler) GetCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.CountsByStatus())
}
