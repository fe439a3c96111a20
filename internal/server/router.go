package server

import (
	"html/template"
	"net/http"
	"strconv"

	"tasca-menu/internal/config"
	"tasca-menu/internal/handlers"
	"tasca-menu/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// formatPrice renders an integer amount with thousands separators,
// 1200 -> "1,200".
func formatPrice(price int) string {
	s := strconv.Itoa(price)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"formatPrice": formatPrice,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("menu_session", store))

	r.Use(middleware.InjectAdmin())

	// PUBLIC
	r.GET("/", handlers.Index)

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth())

	admin.GET("", handlers.Dashboard)
	admin.GET("/add", handlers.ShowAddItem)
	admin.POST("/add", handlers.AddItem)
	admin.GET("/edit/:id", handlers.ShowEditItem)
	admin.POST("/edit/:id", handlers.EditItem)
	admin.POST("/delete/:id", handlers.DeleteItem)
	admin.GET("/change-password", handlers.ShowChangePassword)
	admin.POST("/change-password", handlers.ChangePassword)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
