package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded UI templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Recommender is the slice of the recommendation service the page needs.
type Recommender interface {
	Ready() bool
	Cuisines() []string
}

type Handler struct {
	recommender Recommender
}

func NewHandler(recommender Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// --------------------------------------------------
// GET /
// --------------------------------------------------
func (h *Handler) Index(c *gin.Context) {
	if !h.recommender.Ready() {
		c.HTML(http.StatusServiceUnavailable, "index.html", gin.H{
			"Ready": false,
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Ready":    true,
		"Cuisines": h.recommender.Cuisines(),
	})
}
