package handlers

import (
	"net/http"

	"tasca-menu/internal/database"
	"tasca-menu/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or password."})
		return
	}

	admin, err := service.Authenticate(database.DB, form.Username, form.Password)
	if err != nil {
		// same message for unknown user and wrong password
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or password."})
		return
	}

	sess := sessions.Default(c)
	sess.Set("admin_id", admin.ID)
	sess.Set("username", admin.Username)
	_ = sess.Save()

	setNotice(c, "Logged in successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	setNotice(c, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}
