package router

import (
	"time"

	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/dataset"
	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/middleware"
	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/recommend"
	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface over the loaded catalog. Admin
// routes are registered only when adminToken is non-empty.
func NewRouter(catalog *dataset.Catalog, adminToken string) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(web.Templates())

	// ───────────────────────── SERVICES ─────────────────────────
	recommendService := recommend.NewService(catalog)

	// ───────────────────────── HANDLERS ─────────────────────────
	recommendHandler := recommend.NewHandler(recommendService)
	datasetHandler := dataset.NewHandler(catalog)
	webHandler := web.NewHandler(recommendService)

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/", webHandler.Index)
	r.GET("/cuisines", recommendHandler.ListCuisines)
	r.POST("/recommendations", recommendHandler.Recommend)

	// ───────────────────────── ADMIN ─────────────────────────
	if adminToken != "" {
		admin := r.Group("/admin")
		admin.Use(middleware.AdminAuth(adminToken))
		{
			admin.POST("/reload", datasetHandler.Reload)
		}
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
