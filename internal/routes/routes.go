package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"siyomart/internal/auth"
	"siyomart/internal/cache"
	"siyomart/internal/gateway"
	"siyomart/internal/handlers"
	"siyomart/internal/metrics"
	"siyomart/internal/repository"
	"siyomart/internal/service"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client, tokens *auth.TokenService, gw gateway.PaymentGateway) {
	products := repository.NewProductRepository(db.Collection("products"))
	carts := repository.NewCartRepository(db.Collection("carts"))
	orders := repository.NewOrderRepository(db.Collection("orders"))
	payments := repository.NewPaymentRepository(db.Collection("payments"))

	cartCache := cache.NewRedisCache(redisClient)

	cartService := service.NewCartService(carts, products, cartCache)
	checkoutService := service.NewCheckoutService(orders, carts, products, cartCache)
	orderService := service.NewOrderService(orders)
	paymentService := service.NewPaymentService(orders, payments, gw)

	ph := handlers.ProductHandler{Products: products}
	ch := handlers.CartHandler{Carts: cartService}
	oh := handlers.OrderHandler{Checkout: checkoutService, Orders: orderService}
	payh := handlers.PaymentHandler{Payments: paymentService}

	m := metrics.NewServerMetrics()
	router.Use(m.Middleware())
	router.GET("/metrics", metrics.Handler())
	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	v1 := router.Group("/v1")
	{
		v1.GET("/products", ph.GetProducts)
		v1.GET("/products/:id", ph.GetProductByID)

		authed := v1.Group("")
		authed.Use(auth.Middleware(tokens))
		{
			authed.GET("/cart", ch.GetCart)
			authed.POST("/cart/add", ch.AddItem)
			authed.PUT("/cart/update", ch.UpdateItem)
			authed.DELETE("/cart/remove/:itemId", ch.RemoveItem)
			authed.DELETE("/cart", ch.ClearCart)

			authed.POST("/orders", oh.PlaceOrder)
			authed.GET("/orders", oh.ListOrders)
			authed.GET("/orders/:id", oh.GetOrder)

			authed.POST("/payments/process", payh.ProcessPayment)

			admin := authed.Group("")
			admin.Use(auth.RequireAdmin())
			{
				admin.PATCH("/orders/:id", oh.UpdateStatus)
				admin.POST("/products", ph.CreateProduct)
			}
		}
	}
}
