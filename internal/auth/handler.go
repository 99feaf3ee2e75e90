package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/ju4700/Complete-The-Dictionary/internal/database"
	"github.com/ju4700/Complete-The-Dictionary/internal/flash"
	"github.com/ju4700/Complete-The-Dictionary/internal/users"
)

type registerForm struct {
	Username        string `form:"username" binding:"required,min=2,max=20"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// registerErrors maps binding failures to per-field messages for re-rendering.
func registerErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["username"] = "Invalid form submission."
		return out
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Username":
			out["username"] = "Username must be between 2 and 20 characters."
		case "Password":
			out["password"] = "Password is required."
		case "ConfirmPassword":
			out["confirm_password"] = "Passwords must match."
		}
	}
	return out
}

func RegisterFormHandler(c *gin.Context) {
	cat, msg := flash.Pop(c)
	c.HTML(http.StatusOK, "register.html", gin.H{"flash": msg, "flashType": cat})
}

func RegisterHandler(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"errors":   registerErrors(err),
			"username": c.PostForm("username"),
		})
		return
	}

	if existing, err := users.ByUsername(form.Username); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	} else if existing != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"errors":   map[string]string{"username": "That username is taken. Please choose a different one."},
			"username": form.Username,
		})
		return
	}

	hashed, err := users.HashPassword(form.Password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "failed to hash password"})
		return
	}

	user := users.User{Username: form.Username, PasswordHash: hashed, Role: users.RoleUser}
	if err := database.DB.Create(&user).Error; err != nil {
		// unique index backstop: a concurrent registration won the name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.HTML(http.StatusOK, "register.html", gin.H{
				"errors":   map[string]string{"username": "That username is taken. Please choose a different one."},
				"username": form.Username,
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	if startSession(c, &user) {
		c.Redirect(http.StatusFound, "/")
	}
}

func LoginFormHandler(c *gin.Context) {
	cat, msg := flash.Pop(c)
	c.HTML(http.StatusOK, "login.html", gin.H{"flash": msg, "flashType": cat})
}

func LoginHandler(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, "danger", "Login Unsuccessful. Please check username and password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := users.ByUsername(form.Username)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	// same message for unknown user and bad password
	if user == nil || !user.CheckPassword(form.Password) {
		flash.Set(c, "danger", "Login Unsuccessful. Please check username and password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if startSession(c, user) {
		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler tears down the session. Harmless when already logged out.
func LogoutHandler(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func startSession(c *gin.Context, u *users.User) bool {
	tok, err := GenerateToken(u)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "failed to generate token"})
		return false
	}
	c.SetCookie(CookieName, tok, int(sessionExpiry.Seconds()), "/", "", false, true)
	return true
}
