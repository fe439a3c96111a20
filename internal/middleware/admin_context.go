package middleware

import (
	"tasca-menu/internal/database"
	"tasca-menu/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectAdmin loads the session's admin account into the request context so
// handlers and templates can name the actor.
func InjectAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if idRaw := sess.Get("admin_id"); idRaw != nil {
			if id, ok := idRaw.(uint); ok && id > 0 {
				var admin models.AdminUser
				if err := database.DB.First(&admin, id).Error; err == nil {
					c.Set("CurrentAdmin", admin)
				}
			}
		}

		c.Next()
	}
}
