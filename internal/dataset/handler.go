package dataset

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// ADMIN: POST /admin/reload
// --------------------------------------------------
// Manual cache invalidation for operators who swap the dataset file while
// the process is running.
func (h *Handler) Reload(c *gin.Context) {
	if err := h.catalog.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "dataset reloaded",
		"records": len(h.catalog.All()),
	})
}
