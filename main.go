package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"lightwork-server/config"
	"lightwork-server/content"
	"lightwork-server/db"
	"lightwork-server/handlers"
	"lightwork-server/middleware"
	"lightwork-server/quiz"
	"lightwork-server/session"
	"lightwork-server/spectrum"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Load the article, question bank and spectrum table
	page, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatalf("Error loading page content: %v", err)
	}
	bank, err := quiz.NewBank(page.Quiz)
	if err != nil {
		log.Fatalf("Error building question bank: %v", err)
	}
	table, err := spectrum.NewTable(page.Spectrum.Bands)
	if err != nil {
		log.Fatalf("Error building spectrum table: %v", err)
	}

	codec := session.NewCodec(cfg.Session.SigningKey, cfg.Session.Issuer, cfg.Session.TTL)
	env := &handlers.Env{
		Page:     page,
		Bank:     bank,
		Spectrum: table,
		Sessions: session.NewManager(codec, bank, session.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.SecureCookie,
		}),
		Recorder: db.LogRecorder{},
	}

	// Completion log is optional
	if cfg.DatabaseURL != "" {
		pool, err := db.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()
		if err := db.CreateSchema(pool); err != nil {
			log.Fatalf("Error creating database schema: %v", err)
		}
		recorder := db.NewRecorder(pool)
		env.Recorder = recorder
		env.Stats = recorder
	} else {
		log.Println("DATABASE_URL not set, quiz completions are logged only")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	renderer, err := content.NewRenderer()
	if err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}
	router.HTMLRender = renderer
	router.Use(middleware.Logger())
	handlers.RegisterRoutes(router, env)

	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	// Goroutine to gracefully shut down the server
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("Light Work server starting on %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server startup error: %v", err)
	}
	log.Println("Server exited gracefully.")
}
