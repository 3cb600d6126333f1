package app

import (
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/auth"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/cache"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/config"
	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/handlers"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/repo"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/service"

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

	api := r.Group("/api/v1")

	secret := []byte(cfg.Auth.JWTSecret)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(userSvc, secret, cfg.Auth.TokenTTLDuration())
	registerAuthRoutes(api, authHandler)

	cacheTTL := cfg.Redis.DefaultTTL.Duration()
	var noteCache *cache.ListCache[dom.Note]
	var bookmarkCache *cache.ListCache[dom.Bookmark]
	var todoCache *cache.ListCache[dom.Todo]
	if rdb != nil {
		noteCache = cache.NewListCache[dom.Note](rdb, "note", cacheTTL)
		bookmarkCache = cache.NewListCache[dom.Bookmark](rdb, "bookmark", cacheTTL)
		todoCache = cache.NewListCache[dom.Todo](rdb, "todo", cacheTTL)
	}

	protected := api.Group("", auth.RequireAuth(secret))

	noteSvc := service.NewNoteService(repo.NewPGNoteRepo(db), noteCache)
	registerNoteRoutes(protected, handlers.NewNoteHandler(noteSvc))

	bookmarkSvc := service.NewBookmarkService(repo.NewPGBookmarkRepo(db), bookmarkCache)
	registerBookmarkRoutes(protected, handlers.NewBookmarkHandler(bookmarkSvc))

	todoSvc := service.NewTodoService(repo.NewPGTodoRepo(db), todoCache)
	registerTodoRoutes(protected, handlers.NewTodoHandler(todoSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "MindVault API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
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

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
}

func registerNoteRoutes(api *gin.RouterGroup, h *handlers.NoteHandler) {
	api.GET("/notes", h.List)
	api.POST("/notes", h.Create)
	api.PATCH("/notes/:id", h.Update)
	api.DELETE("/notes/:id", h.Delete)
}

func registerBookmarkRoutes(api *gin.RouterGroup, h *handlers.BookmarkHandler) {
	api.GET("/bookmarks", h.List)
	api.POST("/bookmarks", h.Create)
	api.PATCH("/bookmarks/:id", h.Update)
	api.DELETE("/bookmarks/:id", h.Delete)
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.GET("/todos", h.List)
	api.POST("/todos", h.Create)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
}
