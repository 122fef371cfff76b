package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type uploadRequest struct {
	Image string `json:"image" binding:"required"`
}

// Upload handles POST /upload: a base64 data-URL image from the admin form,
// stored in the image store (Cloudinary when configured, local disk
// otherwise). Returns the absolute URL of the stored asset.
func (h *Handler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !strings.HasPrefix(req.Image, "data:image") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "صورة غير صالحة"})
		return
	}

	url, err := h.Images.Upload(c.Request.Context(), req.Image)
	if err != nil {
		writeError(c, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
