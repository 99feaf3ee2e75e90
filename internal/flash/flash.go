// Package flash implements one-shot messages carried in a short-lived cookie:
// set on a redirect, consumed by the next rendered page.
package flash

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Set queues a message with a category ("success" or "danger") for the next
// rendered page.
func Set(c *gin.Context, category, message string) {
	v := url.QueryEscape(category + "|" + message)
	c.SetCookie(cookieName, v, 60, "/", "", false, true)
}

// Pop returns the pending message and its category, clearing it. Returns empty
// strings when no flash is queued.
func Pop(c *gin.Context) (category, message string) {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return "", ""
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	v, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ""
	}
	parts := strings.SplitN(v, "|", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
