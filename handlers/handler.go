package handlers

import (
	"errors"
	"log"
	"net/http"

	"restaurant-catalog-api/catalog"
	"restaurant-catalog-api/middleware"
	"restaurant-catalog-api/storage"

	"github.com/gin-gonic/gin"
)

// Handler wires the catalog service and its collaborators into the HTTP
// surface
type Handler struct {
	Catalog  *catalog.Service
	Images   storage.ImageStore
	CronAuth middleware.Authenticator
	IconsDir string
}

func New(svc *catalog.Service, images storage.ImageStore, cronAuth middleware.Authenticator, iconsDir string) *Handler {
	return &Handler{Catalog: svc, Images: images, CronAuth: cronAuth, IconsDir: iconsDir}
}

// writeError maps service errors to the JSON error envelope: validation
// failures keep their localized message with a 400, missing records give a
// 404, anything else is logged in full and replaced with a generic message.
func writeError(c *gin.Context, err error, fallback string) {
	if msg, ok := catalog.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	log.Printf("%s %s error: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
