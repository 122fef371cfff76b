package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type iconEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ListIcons handles GET /icons: the .svg files available under the static
// icons directory. A missing directory yields an empty list, not an error.
func (h *Handler) ListIcons(c *gin.Context) {
	entries, err := os.ReadDir(h.IconsDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"icons": []iconEntry{}})
			return
		}
		writeError(c, err, "Failed to fetch icons")
		return
	}

	icons := make([]iconEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".svg") {
			continue
		}
		icons = append(icons, iconEntry{
			Name: entry.Name(),
			Path: "/icons/categories/" + entry.Name(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"icons": icons})
}
