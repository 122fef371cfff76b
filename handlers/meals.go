package handlers

import (
	"net/http"

	"restaurant-catalog-api/catalog"

	"github.com/gin-gonic/gin"
)

type mealSizeRequest struct {
	Name  string    `json:"name"`
	Price flexFloat `json:"price"`
}

type mealRequest struct {
	ID          flexID             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       *string            `json:"image"`
	Price       flexFloat          `json:"price"`
	CategoryID  flexID             `json:"categoryId"`
	Active      *bool              `json:"active"`
	Popular     bool               `json:"popular"`
	HasSizes    bool               `json:"hasSizes"`
	Order       flexFloat          `json:"order"`
	Sizes       *[]mealSizeRequest `json:"sizes"`
}

// ListMeals handles GET /meals?categoryId=N. Meals come from the read cache
// with sizes and category summary included.
func (h *Handler) ListMeals(c *gin.Context) {
	if raw := c.Query("categoryId"); raw != "" {
		id, ok := parseQueryID(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}
		meals, err := h.Catalog.ListMealsByCategory(id)
		if err != nil {
			writeError(c, err, "Failed to fetch meals")
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := h.Catalog.ListMeals()
	if err != nil {
		writeError(c, err, "Failed to fetch meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// SaveMeal handles POST /meals: create when no id is supplied, update
// otherwise. Prices are coerced defensively; a supplied sizes array replaces
// the existing size set wholesale.
func (h *Handler) SaveMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID.Present && !req.ID.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	in := catalog.MealInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       float64(req.Price),
		CategoryID:  req.CategoryID.Value,
		Active:      req.Active,
		Popular:     req.Popular,
		HasSizes:    req.HasSizes,
		Order:       int(req.Order),
	}
	if req.ID.Present {
		in.ID = &req.ID.Value
	}
	if req.Sizes != nil {
		sizes := make([]catalog.SizeInput, 0, len(*req.Sizes))
		for _, sz := range *req.Sizes {
			sizes = append(sizes, catalog.SizeInput{Name: sz.Name, Price: float64(sz.Price)})
		}
		in.Sizes = &sizes
	}

	meal, err := h.Catalog.SaveMeal(in)
	if err != nil {
		writeError(c, err, "فشل في حفظ الوجبة")
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal handles DELETE /meals?id=N. Image cleanup (local file or remote
// asset) is best-effort and never blocks the record deletion.
func (h *Handler) DeleteMeal(c *gin.Context) {
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
	if err := h.Catalog.DeleteMeal(c.Request.Context(), id); err != nil {
		writeError(c, err, "Failed to delete meal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
