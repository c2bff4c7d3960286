// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-multiuser-todo/backend/internal/config"
	"go-multiuser-todo/backend/internal/handlers"
	"go-multiuser-todo/backend/internal/logging"
	"go-multiuser-todo/backend/internal/repositories"
	"go-multiuser-todo/backend/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(logging.Middleware(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// リポジトリ
	todoRepo := repositories.NewTodoRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// サービス
	todoService := services.NewTodoService(todoRepo, userRepo)
	userService := services.NewUserService(userRepo)
	jwtService := services.NewJWTService(cfg.Secret(), cfg.JWTTTL)

	// ハンドラー
	userHandler := handlers.NewUserHandler(userService, jwtService)
	todoHandler := handlers.NewTodoHandler(todoService)

	// ルーティング
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "checking query..") })
	r.GET("/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})
	r.POST("/add-user", userHandler.RegisterHandler)
	r.POST("/user-login", userHandler.LoginHandler)

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware(jwtService, userService))
	{
		authorized.GET("/user-details", userHandler.UserDetailsHandler)
		authorized.PUT("/update-user", userHandler.UpdateUserHandler)
		authorized.DELETE("/delete-user", userHandler.DeleteUserHandler)

		authorized.GET("/get-todos", todoHandler.GetTodosHandler)
		authorized.POST("/add-todo", todoHandler.CreateTodoHandler)
		authorized.PUT("/update-todo/:todoId", todoHandler.UpdateTodoHandler)
		authorized.DELETE("/delete-todo/:todoId", todoHandler.DeleteTodoHandler)
	}

	return r
}

// corsConfig は許可するオリジンからCORS設定を作ります。"*" は全オリジンを許可します。
func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsCfg.AllowCredentials = true

	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	for _, o := range origins {
		if o == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
