package main

import (
	"context"
	"log"
	"os"

	"legalease-backend/handlers"
	"legalease-backend/repository"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Initialize the analysis store (memory, postgres, or redis)
	store, err := repository.NewStoreFromEnv(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize analysis store:", err)
	}
	defer store.Close()

	// Initialize document storage
	documentStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// Initialize Gemini client. Analysis still works without it; every
	// request just takes the heuristic fallback path.
	geminiClient, err := initGemini()
	if err != nil {
		log.Printf("Warning: Gemini unavailable, running fallback-only: %v", err)
		geminiClient = nil
	}

	// Initialize services
	analysisService := service.NewAnalysisService(
		service.WithGeminiClient(geminiClient),
		service.WithAnalysisStore(store),
		service.WithModel(os.Getenv("GEMINI_MODEL")),
	)
	chatService := service.NewChatService(
		service.ChatWithGeminiClient(geminiClient),
		service.ChatWithAnalysisStore(store),
		service.ChatWithModel(os.Getenv("GEMINI_MODEL")),
	)

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService)
	chatHandler := handlers.NewChatHandler(chatService)
	documentHandler := handlers.NewDocumentHandler(analysisService, documentStorage)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Analysis endpoints
		api.POST("/analyze", analyzeHandler.Analyze)
		api.GET("/analyses", analyzeHandler.ListRecent)
		api.GET("/analyses/:id", analyzeHandler.GetAnalysis)

		// Chat endpoint
		api.POST("/chat", chatHandler.Chat)

		// Document endpoints
		api.POST("/documents/upload", documentHandler.Upload)
		api.GET("/documents/:id", documentHandler.Download)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initGemini() (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return client, nil
}
