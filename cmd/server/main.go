package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mukuru1/UbuzimaHC-2/internal/auth"
	"github.com/mukuru1/UbuzimaHC-2/internal/config"
	"github.com/mukuru1/UbuzimaHC-2/internal/database"
	"github.com/mukuru1/UbuzimaHC-2/internal/handlers"
	"github.com/mukuru1/UbuzimaHC-2/internal/middleware"
	"github.com/mukuru1/UbuzimaHC-2/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The /status endpoint reports this too, but a misconfigured deployment
	// should be obvious from the logs alone.
	if configured, reason := cfg.Status(); !configured {
		log.Printf("Warning: Supabase is not configured: %s", reason)
		log.Println("Set SUPABASE_URL and SUPABASE_ANON_KEY to your project values")
	}

	var (
		authService   *supabase.AuthService
		storageClient *supabase.StorageClient
	)
	if configured, _ := cfg.Status(); configured {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}
		authService = supabase.NewAuthService(supabaseClient)

		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}
	}

	var userStore *supabase.UserStore
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Profile storage and migrations are disabled.")
	} else {
		userStore, err = supabase.NewUserStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize user store: %v", err)
		}
		defer userStore.Close()

		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize migrator: %v", err)
		} else {
			defer migrator.Close()
			if err := migrator.Run(context.Background()); err != nil {
				log.Printf("Warning: Migration failed: %v", err)
			}
		}
	}

	// Avoid typed-nil interfaces: a nil *UserStore must become a nil
	// interface so the handlers can skip the store entirely.
	var (
		profiles auth.ProfileStore
		prober   handlers.Prober
	)
	if userStore != nil {
		profiles = userStore
		prober = userStore
	}
	var photos handlers.PhotoUploader
	if storageClient != nil {
		photos = storageClient
	}

	statusHandler := handlers.NewStatusHandler(cfg, prober)

	router := gin.Default()

	router.GET("/health", handlers.HealthHandler)
	router.GET("/status", statusHandler.GetStatus)

	api := router.Group("/api/v1")

	if authService != nil {
		authHandler := handlers.NewAuthHandler(authService, profiles)
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/signin", authHandler.SignIn)
		api.POST("/auth/signout", authHandler.SignOut)
		api.POST("/auth/password/reset", authHandler.ResetPassword)
		api.POST("/auth/password/update", authHandler.UpdatePassword)
	}

	if userStore != nil {
		profileHandler := handlers.NewProfileHandler(profiles, photos)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PATCH("/profile", profileHandler.UpdateProfile)
		protected.POST("/profile/photo", profileHandler.UploadPhoto)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
