package router

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/notifications"
	"github.com/ju4700/Complete-The-Dictionary/internal/words"
)

func submitWord(t *testing.T, client *http.Client, base, word string) string {
	t.Helper()
	resp := postForm(t, client, base+"/submit_word", url.Values{"word": {word}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return body(t, resp)
}

func TestSubmitWordFlow(t *testing.T) {
	srv, client := setupServer(t)
	registerUser(t, client, srv.URL, "alice", "secret")

	b := submitWord(t, client, srv.URL, "apple")
	require.Contains(t, b, "Word added successfully!")

	b = submitWord(t, client, srv.URL, "apple")
	require.Contains(t, b, "Word already exists!")

	b = submitWord(t, client, srv.URL, "grape")
	require.Contains(t, b, "Invalid word!")

	var wordTotal int64
	require.NoError(t, database.DB.Model(&words.Word{}).Count(&wordTotal).Error)
	require.EqualValues(t, 1, wordTotal)

	var noteTotal int64
	require.NoError(t, database.DB.Model(&notifications.Notification{}).Count(&noteTotal).Error)
	require.EqualValues(t, 3, noteTotal)

	resp := get(t, client, srv.URL+"/leaderboard")
	lb := body(t, resp)
	require.Contains(t, lb, "alice")
	require.Contains(t, lb, "<td>1</td>")
}

func TestNotificationsShownOnceAsUnread(t *testing.T) {
	srv, client := setupServer(t)
	registerUser(t, client, srv.URL, "alice", "secret")

	submitWord(t, client, srv.URL, "apple")
	submitWord(t, client, srv.URL, "grape")

	resp := get(t, client, srv.URL+"/notifications")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b := body(t, resp)
	require.Contains(t, b, "Word &#39;apple&#39; added successfully!")
	require.Contains(t, b, "Word &#39;grape&#39; is invalid!")

	resp = get(t, client, srv.URL+"/notifications")
	require.Contains(t, body(t, resp), "No new notifications.")
}

func TestNotificationsArePerUser(t *testing.T) {
	srv, client := setupServer(t)
	registerUser(t, client, srv.URL, "alice", "secret")
	submitWord(t, client, srv.URL, "apple")

	get(t, client, srv.URL+"/logout").Body.Close()
	registerUser(t, client, srv.URL, "bob", "secret")

	resp := get(t, client, srv.URL+"/notifications")
	require.Contains(t, body(t, resp), "No new notifications.")
}
