package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"stockroom/internal/logger"
	"stockroom/internal/models"
	"stockroom/internal/store"

	"github.com/gin-gonic/gin"
)

func handleCreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	// Explicit presence check: a client-sent price of exactly 0 is kept, only
	// an omitted price falls back to the default.
	price := 0.0
	if req.Price != nil {
		price = *req.Price
	}

	st := c.MustGet("store").(*store.Store)
	ownerID := c.MustGet("user_id").(int)

	item, err := st.CreateItem(ownerID, req.Name, req.Description, price)
	if err != nil {
		logger.Error("Failed to create item", "owner_id", ownerID, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"item": item})
}

func handleListItems(c *gin.Context) {
	st := c.MustGet("store").(*store.Store)

	items, err := st.ListItems()
	if err != nil {
		logger.Error("Failed to list items", "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	respondOK(c, http.StatusOK, gin.H{"items": items})
}

func handleGetItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	st := c.MustGet("store").(*store.Store)

	item, err := st.GetItem(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Item not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"item": item})
}

func handleUpdateItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st := c.MustGet("store").(*store.Store)

	item, err := st.UpdateItem(id, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Item not found")
			return
		}
		logger.Error("Failed to update item", "item_id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"item": item})
}

func handleDeleteItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	st := c.MustGet("store").(*store.Store)

	if err := st.DeleteItem(id); err != nil {
		respondError(c, http.StatusNotFound, "Item not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// parseItemID reads the :id path parameter. A non-numeric id can never match
// a stored item, so it reports 404 rather than a separate parse error.
func parseItemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondError(c, http.StatusNotFound, "Item not found")
		return 0, false
	}
	return id, true
}
