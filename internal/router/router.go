package router

import (
	"time"

	"github.com/anand-nandz/Inkspire/internal/auth"
	"github.com/anand-nandz/Inkspire/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup 配置 Gin 引擎和路由。
func Setup(h *handler.Handler, tokens *auth.Manager, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/signup", h.Signup)
			users.POST("/verify-otp", h.VerifyOTP)
			users.POST("/login", h.Login)
			users.POST("/logout", h.Logout)
		}

		// 需要认证的路由
		authed := api.Group("")
		authed.Use(auth.Middleware(tokens))
		{
			authed.GET("/users/profile", h.GetProfile)
			authed.PUT("/users/profile", h.UpdateProfile)

			authed.GET("/home", h.ListAllArticles)

			articles := authed.Group("/articles")
			{
				articles.GET("", h.ListOwnedArticles)
				articles.POST("", h.CreateArticle)
				articles.GET("/:id", h.GetArticle)
				articles.PUT("/:id", h.UpdateArticle)
				articles.PATCH("/:id", h.DeleteArticle)
				articles.POST("/:id/like", h.LikeArticle)
				articles.POST("/:id/dislike", h.DislikeArticle)
			}
		}
	}

	return r
}
