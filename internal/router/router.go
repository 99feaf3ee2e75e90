package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ju4700/Complete-The-Dictionary/internal/admin"
	"github.com/ju4700/Complete-The-Dictionary/internal/auth"
	"github.com/ju4700/Complete-The-Dictionary/internal/flash"
	"github.com/ju4700/Complete-The-Dictionary/internal/leaderboard"
	"github.com/ju4700/Complete-The-Dictionary/internal/notifications"
	"github.com/ju4700/Complete-The-Dictionary/internal/web"
	"github.com/ju4700/Complete-The-Dictionary/internal/words"
)

// New assembles the full route table. Guards compose per route: RequireAuth
// alone for session pages, RequireAuth then RequireAdmin for moderation.
func New() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	r.Use(auth.OptionalAuth())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", HomeHandler)

	r.GET("/register", auth.RegisterFormHandler)
	r.POST("/register", auth.RegisterHandler)
	r.GET("/login", auth.LoginFormHandler)
	r.POST("/login", auth.LoginHandler)
	r.GET("/logout", auth.LogoutHandler)

	r.GET("/leaderboard", leaderboard.Handler)

	r.GET("/submit_word", auth.RequireAuth(), words.SubmitFormHandler)
	r.POST("/submit_word", auth.RequireAuth(), words.SubmitHandler)
	r.GET("/notifications", auth.RequireAuth(), notifications.ListHandler)

	adminGroup := r.Group("/admin", auth.RequireAuth(), auth.RequireAdmin())
	adminGroup.GET("", admin.DashboardHandler)
	adminGroup.GET("/delete_user/:id", admin.DeleteUserHandler)
	adminGroup.GET("/delete_word/:id", admin.DeleteWordHandler)

	return r
}

func HomeHandler(c *gin.Context) {
	cat, msg := flash.Pop(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"flash":     msg,
		"flashType": cat,
		"username":  auth.CurrentUsername(c),
	})
}
