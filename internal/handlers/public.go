package handlers

import (
	"net/http"

	"tasca-menu/internal/database"
	"tasca-menu/internal/menu"
	"tasca-menu/internal/service"

	"github.com/gin-gonic/gin"
)

// Index renders the public menu, grouped and ordered by category. The five
// most recent activity entries are loaded alongside; the categorized index
// template does not show them, but the data stays available to the view.
func Index(c *gin.Context) {
	items, err := service.ListItems(database.DB)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load menu")
		return
	}

	logs, err := service.RecentActivity(database.DB, 5)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load menu")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"sections": menu.Categorize(items),
		"logs":     logs,
	})
}
