package handlers

import (
	"net/http"

	"restaurant-catalog-api/catalog"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	ID     flexID `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Order  *int   `json:"order"`
	Active *bool  `json:"active"`
}

// ListCategories handles GET /categories?all=true|false. Admin requests pass
// all=true to include inactive categories.
func (h *Handler) ListCategories(c *gin.Context) {
	includeAll := c.Query("all") == "true"
	categories, err := h.Catalog.ListCategories(includeAll)
	if err != nil {
		writeError(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// SaveCategory handles POST /categories: create when no id is supplied,
// update otherwise
func (h *Handler) SaveCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID.Present && !req.ID.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	in := catalog.CategoryInput{
		Name:   req.Name,
		Icon:   req.Icon,
		Order:  req.Order,
		Active: req.Active,
	}
	if req.ID.Present {
		in.ID = &req.ID.Value
	}

	category, err := h.Catalog.SaveCategory(in)
	if err != nil {
		writeError(c, err, "فشل في حفظ القسم")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories?id=N
func (h *Handler) DeleteCategory(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID required"})
		return
	}
	id, ok := parseQueryID(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		writeError(c, err, "Failed to delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
