package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/edbarbearia/barbershop-api/internal/config"
	dbpkg "github.com/edbarbearia/barbershop-api/internal/db"
	"github.com/edbarbearia/barbershop-api/internal/middleware"
	"github.com/edbarbearia/barbershop-api/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("sem arquivo .env, usando variáveis do ambiente")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
