package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ju4700/Complete-The-Dictionary/internal/auth"
	"github.com/ju4700/Complete-The-Dictionary/internal/database"
)

// Notify records a message for a user. tx may be a transaction so the
// notification commits or rolls back with the operation that caused it.
func Notify(tx *gorm.DB, userID uint, message string) error {
	return tx.Create(&Notification{Message: message, UserID: userID}).Error
}

// UnreadFor returns a user's unread notifications, oldest first.
func UnreadFor(userID uint) ([]Notification, error) {
	var ns []Notification
	err := database.DB.Where("user_id = ? AND read = ?", userID, false).
		Order("created_at asc").Find(&ns).Error
	return ns, err
}

// MarkRead flags all of a user's unread notifications as read.
func MarkRead(userID uint) error {
	return database.DB.Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

// ListHandler shows the current user's unread notifications and marks them
// read in the same request, so each is shown as unread at most once.
func ListHandler(c *gin.Context) {
	userID := auth.CurrentUserID(c)

	ns, err := UnreadFor(userID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	if err := MarkRead(userID); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "notifications.html", gin.H{
		"notifications": ns,
		"username":      auth.CurrentUsername(c),
	})
}
