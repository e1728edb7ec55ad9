package recommend

import (
	"fmt"
	"net/http"

	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/dataset"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /recommendations
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var req struct {
		Cuisines  []string `json:"cuisines"`
		MinRating *float64 `json:"min_rating"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.service.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable"})
		return
	}

	// The filter itself treats an empty set as "no restriction"; the
	// interactive surface requires an explicit choice.
	if len(req.Cuisines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please select at least one cuisine"})
		return
	}

	results := h.service.Recommend(Preferences{
		Cuisines:  req.Cuisines,
		MinRating: req.MinRating,
	})

	if len(results) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "no restaurants match your criteria",
			"results": []dataset.Restaurant{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("found %d restaurants", len(results)),
		"results": results,
	})
}

// --------------------------------------------------
// GET /cuisines
// --------------------------------------------------
func (h *Handler) ListCuisines(c *gin.Context) {
	if !h.service.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cuisines": h.service.Cuisines()})
}
