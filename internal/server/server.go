package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/Dwarak18/GPT-llama3.2/internal/database"
	"github.com/Dwarak18/GPT-llama3.2/internal/handlers"
	"github.com/Dwarak18/GPT-llama3.2/internal/ollama"
	"github.com/Dwarak18/GPT-llama3.2/internal/services"
	"github.com/Dwarak18/GPT-llama3.2/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Ollama     *ollama.Client
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Redis нужен только для черного списка токенов, без него logout недоступен
	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, token blacklist disabled")
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	ollamaClient := ollama.NewClient(os.Getenv("OLLAMA_URL"), os.Getenv("OLLAMA_MODEL"))

	authSvc := services.NewAuthService(dbConn)

	authH := handlers.NewAuthHandler(authSvc, jwtMgr, rdb)
	userH := handlers.NewUserHandler(dbConn)
	chatH := handlers.NewChatHandler(ollamaClient)
	healthH := handlers.NewHealthHandler(ollamaClient)

	router := gin.Default()
	APIEndpoints(router, authH, userH, chatH, healthH, jwtMgr, rdb)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Ollama:     ollamaClient,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
