package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"tasca-menu/internal/database"
	"tasca-menu/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	items, err := service.ListItems(database.DB)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load items")
		return
	}

	render(c, http.StatusOK, "admin.html", gin.H{"items": items})
}

func ShowAddItem(c *gin.Context) {
	render(c, http.StatusOK, "item_form.html", gin.H{
		"Title": "Add New Item",
		"form":  service.ItemInput{},
		"error": "",
	})
}

func AddItem(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	in := itemFormInput(c)
	if _, err := service.AddItem(database.DB, in, admin.Username); err != nil {
		renderItemForm(c, "Add New Item", 0, in, err)
		return
	}

	setNotice(c, "Item added successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func ShowEditItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := service.GetItem(database.DB, id)
	if err != nil {
		c.String(http.StatusNotFound, "Item not found")
		return
	}

	render(c, http.StatusOK, "item_form.html", gin.H{
		"Title": "Edit Item",
		"ID":    item.ID,
		"form": service.ItemInput{
			Name:        item.Name,
			Description: item.Description,
			Price:       strconv.Itoa(item.Price),
			Category:    item.Category,
		},
		"error": "",
	})
}

func EditItem(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	in := itemFormInput(c)
	if _, err := service.UpdateItem(database.DB, id, in, admin.Username); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.String(http.StatusNotFound, "Item not found")
			return
		}
		renderItemForm(c, "Edit Item", id, in, err)
		return
	}

	setNotice(c, "Item updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func DeleteItem(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := service.DeleteItem(database.DB, id, admin.Username); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.String(http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("delete item %d: %v", id, err)
		c.String(http.StatusInternalServerError, "failed to delete item")
		return
	}

	setNotice(c, "Item deleted successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func ShowChangePassword(c *gin.Context) {
	render(c, http.StatusOK, "change_password.html", gin.H{"error": ""})
}

func ChangePassword(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	current := c.PostForm("current_password")
	newPlain := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	err := service.ChangePassword(database.DB, admin.ID, current, newPlain, confirm)
	switch {
	case err == nil:
		setNotice(c, "Password changed successfully!")
		c.Redirect(http.StatusFound, "/admin")
	case errors.Is(err, service.ErrAdminNotFound):
		// session points at a deleted account, force a fresh login
		sess := sessions.Default(c)
		sess.Clear()
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort):
		render(c, http.StatusBadRequest, "change_password.html", gin.H{"error": errMessage(err)})
	default:
		log.Printf("change password for %s: %v", admin.Username, err)
		render(c, http.StatusInternalServerError, "change_password.html", gin.H{"error": "Something went wrong. Please try again."})
	}
}

// itemID parses the :id route parameter, writing the response itself on
// bad input.
func itemID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid item id")
		return 0, false
	}
	return uint(id), true
}

func itemFormInput(c *gin.Context) service.ItemInput {
	return service.ItemInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
	}
}

// renderItemForm redisplays the add/edit form with the submitted values and
// a message for the failure.
func renderItemForm(c *gin.Context, title string, id uint, in service.ItemInput, err error) {
	status := http.StatusBadRequest
	msg := errMessage(err)
	if !isValidation(err) {
		log.Printf("save item: %v", err)
		status = http.StatusInternalServerError
		msg = "Something went wrong. Please try again."
	}

	data := gin.H{"Title": title, "form": in, "error": msg}
	if id > 0 {
		data["ID"] = id
	}
	render(c, status, "item_form.html", data)
}

func isValidation(err error) bool {
	return errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrPriceNotInteger)
}

func errMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrPriceNotInteger):
		return "Price must be a whole number."
	case errors.Is(err, service.ErrNameRequired):
		return "Name is required."
	case errors.Is(err, service.ErrWrongPassword):
		return "Current password is incorrect."
	case errors.Is(err, service.ErrPasswordMismatch):
		return "New passwords do not match."
	case errors.Is(err, service.ErrPasswordTooShort):
		return "New password must be at least 6 characters."
	}
	return err.Error()
}
