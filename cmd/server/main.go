package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ju4700/Complete-The-Dictionary/internal/auth"
	"github.com/ju4700/Complete-The-Dictionary/internal/config"
	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/notifications"
	"github.com/ju4700/Complete-The-Dictionary/internal/router"
	"github.com/ju4700/Complete-The-Dictionary/internal/users"
	"github.com/ju4700/Complete-The-Dictionary/internal/words"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	auth.Configure(cfg.SecretKey, cfg.SessionExpiresHours)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(&users.User{}, &words.Word{}, &notifications.Notification{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := router.New()

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
