package words

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ju4700/Complete-The-Dictionary/internal/auth"
	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/flash"
	"github.com/ju4700/Complete-The-Dictionary/internal/notifications"
)

// DailyLimit caps how many words one user may submit per UTC day.
const DailyLimit = 50

// validWords stands in for a real dictionary API.
var validWords = map[string]bool{
	"apple":  true,
	"banana": true,
	"cherry": true,
}

// Result is the outcome of one submission attempt. Flash carries the
// user-facing message; the notification row holds the longer form.
type Result struct {
	Added     bool
	FlashType string
	Flash     string
}

// Submit runs one submission attempt for a user: normalize, validate against
// the word set, enforce the daily cap, reject duplicates, insert. The cap
// check and insert run in one transaction, and the unique index on the word
// column backstops the duplicate pre-check under concurrent submission.
// Every outcome, including rejections, records a notification.
func Submit(userID uint, raw string) (Result, error) {
	word := strings.ToLower(strings.TrimSpace(raw))

	if !validWords[word] {
		if err := notifications.Notify(database.DB, userID, fmt.Sprintf("Word '%s' is invalid!", word)); err != nil {
			return Result{}, err
		}
		return Result{FlashType: "danger", Flash: "Invalid word!"}, nil
	}

	var res Result
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		endOfDay := startOfDay.AddDate(0, 0, 1)

		var todayCount int64
		if err := tx.Model(&Word{}).
			Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, startOfDay, endOfDay).
			Count(&todayCount).Error; err != nil {
			return err
		}
		if todayCount >= DailyLimit {
			if err := notifications.Notify(tx, userID, "You have reached the daily limit of 50 words!"); err != nil {
				return err
			}
			res = Result{FlashType: "danger", Flash: "You have reached the daily limit of 50 words!"}
			return nil
		}

		var existing Word
		err := tx.Where("word = ?", word).First(&existing).Error
		if err == nil {
			if err := notifications.Notify(tx, userID, fmt.Sprintf("Word '%s' already exists!", word)); err != nil {
				return err
			}
			res = Result{FlashType: "danger", Flash: "Word already exists!"}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&Word{Word: word, UserID: userID, CreatedAt: now}).Error; err != nil {
			return err
		}

		if err := notifications.Notify(tx, userID, fmt.Sprintf("Word '%s' added successfully!", word)); err != nil {
			return err
		}
		res = Result{Added: true, FlashType: "success", Flash: "Word added successfully!"}
		return nil
	})
	// a concurrent identical submission won the unique index; the losing
	// insert aborts the transaction, so the notification is written after
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if nerr := notifications.Notify(database.DB, userID, fmt.Sprintf("Word '%s' already exists!", word)); nerr != nil {
			return Result{}, nerr
		}
		return Result{FlashType: "danger", Flash: "Word already exists!"}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func SubmitFormHandler(c *gin.Context) {
	cat, msg := flash.Pop(c)
	c.HTML(http.StatusOK, "submit_word.html", gin.H{
		"flash":     msg,
		"flashType": cat,
		"username":  auth.CurrentUsername(c),
	})
}

func SubmitHandler(c *gin.Context) {
	res, err := Submit(auth.CurrentUserID(c), c.PostForm("word"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "submit_word.html", gin.H{
		"flash":     res.Flash,
		"flashType": res.FlashType,
		"username":  auth.CurrentUsername(c),
	})
}
