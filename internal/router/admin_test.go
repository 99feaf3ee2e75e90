package router

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/notifications"
	"github.com/ju4700/Complete-The-Dictionary/internal/users"
	"github.com/ju4700/Complete-The-Dictionary/internal/words"
)

func setupAdmin(t *testing.T) (base string, client *http.Client) {
	t.Helper()
	srv, c := setupServer(t)
	registerUser(t, c, srv.URL, "root", "secret")
	promoteToAdmin(t, "root")
	loginUser(t, c, srv.URL, "root", "secret")
	return srv.URL, c
}

func TestAdminListShowsUsersAndWords(t *testing.T) {
	base, client := setupAdmin(t)

	var root users.User
	require.NoError(t, database.DB.First(&root, "username = ?", "root").Error)
	require.NoError(t, database.DB.Create(&words.Word{Word: "apple", UserID: root.ID}).Error)

	resp := get(t, client, base+"/admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b := body(t, resp)
	require.Contains(t, b, "root")
	require.Contains(t, b, "apple")
}

func TestDeleteWord(t *testing.T) {
	base, client := setupAdmin(t)

	w := words.Word{Word: "banana", UserID: 1}
	require.NoError(t, database.DB.Create(&w).Error)

	resp := get(t, client, fmt.Sprintf("%s/admin/delete_word/%d", base, w.ID))
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))

	var n int64
	require.NoError(t, database.DB.Model(&words.Word{}).Count(&n).Error)
	require.Zero(t, n)

	resp = get(t, client, base+"/admin")
	require.Contains(t, body(t, resp), "Word has been deleted!")
}

func TestDeleteWordNotFound(t *testing.T) {
	base, client := setupAdmin(t)

	resp := get(t, client, base+"/admin/delete_word/9999")
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserCascades(t *testing.T) {
	base, client := setupAdmin(t)

	victim := users.User{Username: "bob", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&victim).Error)
	require.NoError(t, database.DB.Create(&words.Word{Word: "cherry", UserID: victim.ID}).Error)
	require.NoError(t, notifications.Notify(database.DB, victim.ID, "hello"))

	resp := get(t, client, fmt.Sprintf("%s/admin/delete_user/%d", base, victim.ID))
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))

	var n int64
	require.NoError(t, database.DB.Model(&users.User{}).Where("id = ?", victim.ID).Count(&n).Error)
	require.Zero(t, n)
	require.NoError(t, database.DB.Model(&words.Word{}).Where("user_id = ?", victim.ID).Count(&n).Error)
	require.Zero(t, n)
	require.NoError(t, database.DB.Model(&notifications.Notification{}).Where("user_id = ?", victim.ID).Count(&n).Error)
	require.Zero(t, n)
}

func TestDeleteUserNotFound(t *testing.T) {
	base, client := setupAdmin(t)

	resp := get(t, client, base+"/admin/delete_user/9999")
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var n int64
	require.NoError(t, database.DB.Model(&users.User{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}
