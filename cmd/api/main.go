package main

import (
	"context"
	"log"
	"os"

	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/dataset"
	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/router"
	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		log.Fatal("❌ Missing env var: DATA_PATH")
	}

	cachePath := os.Getenv("CACHE_PATH")
	if cachePath == "" {
		cachePath = dataPath + ".snapshot.json"
	}

	// ───────────────────────── REMOTE DATASET (OPTIONAL) ─────────────────────────
	if key := os.Getenv("R2_OBJECT_KEY"); key != "" {
		for _, k := range []string{
			"R2_ENDPOINT",
			"R2_ACCESS_KEY",
			"R2_SECRET_KEY",
			"R2_BUCKET_NAME",
		} {
			if os.Getenv(k) == "" {
				log.Fatalf("❌ Missing env var: %s", k)
			}
		}

		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		if err := r2Client.FetchDataset(context.Background(), key, dataPath); err != nil {
			log.Fatal("❌ Dataset fetch failed:", err)
		}
		log.Println("✅ Dataset fetched from R2")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalog := dataset.Open(dataPath, cachePath)
	if catalog.Empty() {
		log.Println("⚠️ Serving with an empty dataset; check DATA_PATH")
	} else {
		log.Printf("✅ Loaded %d restaurants", len(catalog.All()))
	}

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(catalog, os.Getenv("ADMIN_TOKEN"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
