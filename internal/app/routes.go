package app

import (
	"fmt"

	"github.com/katiepdx/todo-app-be/internal/auth"
	"github.com/katiepdx/todo-app-be/internal/cache"
	"github.com/katiepdx/todo-app-be/internal/config"
	"github.com/katiepdx/todo-app-be/internal/handlers"
	"github.com/katiepdx/todo-app-be/internal/repo"
	"github.com/katiepdx/todo-app-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration())

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	registerAuthRoutes(r.Group("/auth"), authHandler)

	// everything under /api requires a valid bearer token
	api := r.Group("/api", auth.RequireToken(tokens))
	api.GET("/test", testHandler())
	todoRepo := repo.NewPGTodoRepo(db)
	todoCache := cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	todoSvc := service.NewTodoService(todoRepo, todoCache)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	registerTodoRoutes(api, todoHandler)

	r.NoRoute(noSuchEndpoint)
}

// rootHandler godoc
// @Summary      Service banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

// healthHandler godoc
// @Summary      Liveness check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /health [get]
func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

// versionHandler godoc
// @Summary      Build version
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /version [get]
func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

// testHandler echoes the authenticated user id, a quick way to check a token.
//
// @Summary      Echo the authenticated user id
// @Tags         meta
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/test [get]
func testHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserIDFromContext(c)
		c.JSON(200, gin.H{
			"message": fmt.Sprintf("in this protected route, we get the user's id like so: %d", userID),
		})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func noSuchEndpoint(c *gin.Context) {
	c.JSON(404, gin.H{"message": "No such endpoint"})
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.POST("/todos", h.Create)
	api.GET("/todos", h.List)
	api.GET("/todos/:id", h.GetByID)
	api.PUT("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
}

func registerAuthRoutes(grp *gin.RouterGroup, h *handlers.AuthHandler) {
	grp.POST("/signup", h.Signup)
	grp.POST("/signin", h.Signin)
}
