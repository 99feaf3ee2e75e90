package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ju4700/Complete-The-Dictionary/internal/auth"
	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/flash"
	"github.com/ju4700/Complete-The-Dictionary/internal/notifications"
	"github.com/ju4700/Complete-The-Dictionary/internal/users"
	"github.com/ju4700/Complete-The-Dictionary/internal/words"
)

// DashboardHandler lists every user and every word for moderation.
func DashboardHandler(c *gin.Context) {
	var userList []users.User
	if err := database.DB.Order("id").Find(&userList).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	var wordList []words.Word
	if err := database.DB.Order("id").Find(&wordList).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	cat, msg := flash.Pop(c)
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"users":     userList,
		"words":     wordList,
		"flash":     msg,
		"flashType": cat,
		"username":  auth.CurrentUsername(c),
	})
}

// DeleteUserHandler removes a user together with their words and
// notifications, so no rows are left pointing at a missing owner.
func DeleteUserHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "invalid id"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "user not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&words.Word{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&notifications.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	flash.Set(c, "success", "User has been deleted!")
	c.Redirect(http.StatusFound, "/admin")
}

func DeleteWordHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "invalid id"})
		return
	}

	var word words.Word
	if err := database.DB.First(&word, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "word not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Delete(&word).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	flash.Set(c, "success", "Word has been deleted!")
	c.Redirect(http.StatusFound, "/admin")
}
