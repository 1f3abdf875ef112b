package routes

import (
	"time"

	"crisis-supply-api-server/config"
	"crisis-supply-api-server/internal/api/handlers"
	"crisis-supply-api-server/internal/api/middleware"
	"crisis-supply-api-server/internal/s3"
	"crisis-supply-api-server/internal/socket"
	"crisis-supply-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the handlers into the route tree.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	requestStore *store.Store,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
	tokenTTL time.Duration,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	secret := []byte(cfg.JWT.Secret)

	requestHandler := &handlers.RequestHandler{Store: requestStore}
	inventoryHandler := &handlers.InventoryHandler{DB: db}
	warehouseHandler := &handlers.WarehouseHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db, JWTSecret: secret, TokenTTL: tokenTTL}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, JWTSecret: secret}
	exportHandler := &handlers.ExportHandler{Store: requestStore, Uploader: s3Uploader}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// Catalog reads are public; the dashboards fetch them before login.
		public := apiV1.Group("/")
		{
			public.GET("/inventory", inventoryHandler.GetInventory)
			public.GET("/inventory/location/:name", inventoryHandler.GetInventoryByLocation)
			public.GET("/warehouses", warehouseHandler.GetAllWarehouses)
			public.GET("/warehouses/:id", warehouseHandler.GetWarehouseByID)
		}

		// The request workflow requires a known user but is not role-gated;
		// the role claim is a display label for the client.
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(secret))
		{
			requests := protected.Group("/requests")
			{
				requests.POST("/", requestHandler.CreateRequest)
				requests.GET("/", requestHandler.GetAllRequests)
				requests.GET("/my", requestHandler.GetMyRequests)
				requests.GET("/counts", requestHandler.GetCounts)
				requests.GET("/:id", requestHandler.GetRequestByID)
				requests.PUT("/:id/status", requestHandler.UpdateStatus)
			}

			protected.GET("/personnel", userHandler.GetPersonnel)
		}

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate(secret))
		admin.Use(middleware.Authorize("admin"))
		{
			admin.POST("/users", userHandler.CreateUser)
			admin.POST("/export", exportHandler.ExportRequests)

			warehouses := admin.Group("/warehouses")
			{
				warehouses.POST("/", warehouseHandler.CreateWarehouse)
				warehouses.PUT("/:id", warehouseHandler.UpdateWarehouse)
				warehouses.DELETE("/:id", warehouseHandler.DeleteWarehouse)
			}
		}
	}

	return router
}
