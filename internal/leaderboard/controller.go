package leaderboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ju4700/Complete-The-Dictionary/internal/auth"
	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/flash"
)

type Entry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// Compute ranks every user by the number of distinct word strings they have
// submitted; repeat submissions of the same word by one user count once.
// Order among equal scores is whatever the query returns (unspecified).
func Compute() ([]Entry, error) {
	var entries []Entry
	err := database.DB.Table("users").
		Select("users.username AS username, COUNT(DISTINCT words.word) AS score").
		Joins("LEFT JOIN words ON words.user_id = users.id").
		Group("users.id, users.username").
		Order("score DESC").
		Scan(&entries).Error
	return entries, err
}

func Handler(c *gin.Context) {
	entries, err := Compute()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	cat, msg := flash.Pop(c)
	c.HTML(http.StatusOK, "leaderboard.html", gin.H{
		"leaderboard": entries,
		"flash":       msg,
		"flashType":   cat,
		"username":    auth.CurrentUsername(c),
	})
}
