package handlers

import (
	"tasca-menu/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML, adding the current admin and any one-shot notice a
// previous redirect left in the session.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if aVal, ok := c.Get("CurrentAdmin"); ok {
		if admin, ok := aVal.(models.AdminUser); ok {
			data["CurrentAdmin"] = admin
			data["CurrentUsername"] = admin.Username
		}
	}

	sess := sessions.Default(c)
	if notice, ok := sess.Get("notice").(string); ok && notice != "" {
		sess.Delete("notice")
		_ = sess.Save()
		data["Notice"] = notice
	}

	c.HTML(status, tmpl, data)
}

// setNotice stores a message shown once on the next rendered page.
func setNotice(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.Set("notice", msg)
	_ = sess.Save()
}

// currentAdmin returns the admin loaded by middleware.InjectAdmin.
func currentAdmin(c *gin.Context) (models.AdminUser, bool) {
	aVal, ok := c.Get("CurrentAdmin")
	if !ok {
		return models.AdminUser{}, false
	}
	admin, ok := aVal.(models.AdminUser)
	return admin, ok
}
