package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"siyomart/internal/auth"
	"siyomart/internal/config"
	"siyomart/internal/database"
	"siyomart/internal/gateway"
	"siyomart/internal/routes"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	tokens := auth.NewTokenService(cfg.JWTSecret)
	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey)

	router := gin.Default()
	routes.RegisterRoutes(router, db, redisClient, tokens, stripeGateway)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
