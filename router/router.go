package router

import (
	"net/http"
	"time"

	"financas/api"
	"financas/config"
	_ "financas/docs"
	"financas/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every route of the API.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// API index
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Personal Finances API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"usuarios":   "/api/usuarios",
				"categorias": "/api/categorias",
				"transacoes": "/api/transacoes",
			},
		})
	})

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userHandler := api.NewUserHandler(cfg)
	categoryHandler := api.NewCategoryHandler()
	transactionHandler := api.NewTransactionHandler()
	exportHandler := api.NewExportHandler()

	apiGroup := r.Group("/api")
	{
		// credential endpoints, throttled per IP
		usuarios := apiGroup.Group("/usuarios")
		usuarios.Use(middleware.LoginRateLimit(10, time.Minute))
		{
			usuarios.POST("/cadastrar", userHandler.Register)
			usuarios.POST("/login", userHandler.Login)
		}

		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/usuarios/perfil", userHandler.GetProfile)
			authorized.PUT("/usuarios/atualizar", userHandler.UpdateProfile)
			authorized.DELETE("/usuarios/deletar", userHandler.DeleteAccount)

			categorias := authorized.Group("/categorias")
			{
				categorias.POST("", categoryHandler.Create)
				categorias.GET("", categoryHandler.List)
				categorias.GET("/:id", categoryHandler.Get)
				categorias.PUT("/:id", categoryHandler.Update)
				categorias.DELETE("/:id", categoryHandler.Delete)
			}

			transacoes := authorized.Group("/transacoes")
			{
				transacoes.POST("", transactionHandler.Create)
				transacoes.GET("", transactionHandler.List)
				// fixed paths before the :id wildcard
				transacoes.GET("/resumo", transactionHandler.Summary)
				transacoes.GET("/exportar", exportHandler.Export)
				transacoes.GET("/:id", transactionHandler.Get)
				transacoes.PUT("/:id", transactionHandler.Update)
				transacoes.DELETE("/:id", transactionHandler.Delete)
			}
		}
	}

	// liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "route not found",
		})
	})

	return r
}

// CORSMiddleware allows cross-origin requests from browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
