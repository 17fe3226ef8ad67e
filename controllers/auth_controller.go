package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh_token"

// setRefreshCookie delivers the refresh token as an HTTP-only, secure,
// cross-site cookie.
func setRefreshCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(refreshCookieName, token, maxAge, "/", "", true, true)
}

// LoginRequest is the body for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates credentials and issues the token pair
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		utils.LogError("Login failed for %s: user not found", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed for %s: wrong password", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !user.IsActive {
		utils.LogError("Login attempt on inactive account: %s", req.Email)
		utils.Forbidden(c, "Account is inactive")
		return
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		utils.LogError("Failed to generate access token: %v", err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(&user)
	if err != nil {
		utils.LogError("Failed to generate refresh token: %v", err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())
	if user.IsAdmin {
		utils.LogActivity(models.ActivityAdminLogin, "user", utils.EntityID(user.ID), user.Email, nil, nil)
	}

	setRefreshCookie(c, refreshToken, int(utils.RefreshTokenTTL.Seconds()))

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"access_token": accessToken,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"is_admin": user.IsAdmin,
		},
	})
}

// Refresh exchanges a valid refresh cookie for a new access token
func Refresh(c *gin.Context) {
	tokenString, err := c.Cookie(refreshCookieName)
	if err != nil || tokenString == "" {
		utils.Unauthorized(c, "Refresh token missing")
		return
	}

	var blacklisted int64
	if err := config.DB.Model(&models.BlacklistedToken{}).
		Where("token = ?", tokenString).
		Count(&blacklisted).Error; err == nil && blacklisted > 0 {
		utils.LogError("Blacklisted refresh token presented")
		utils.Unauthorized(c, "Please login for access")
		return
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		utils.LogError("Invalid refresh token: %v", err)
		utils.Unauthorized(c, "Please login for access")
		return
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		utils.LogError("Wrong token type presented for refresh")
		utils.Unauthorized(c, "Please login for access")
		return
	}

	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.Unauthorized(c, "User not found")
		return
	}
	if !user.IsActive {
		utils.Forbidden(c, "Account is inactive")
		return
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Refreshed access token for user %d", user.ID)
	utils.Success(c, "Token refreshed", gin.H{"access_token": accessToken})
}

// Logout blacklists the refresh token and clears the cookie
func Logout(c *gin.Context) {
	tokenString, err := c.Cookie(refreshCookieName)
	if err == nil && tokenString != "" {
		expiresAt := time.Now().Add(utils.RefreshTokenTTL)
		if claims, err := utils.ParseToken(tokenString); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiresAt = time.Unix(int64(exp), 0)
			}
		}
		entry := models.BlacklistedToken{Token: tokenString, ExpiresAt: expiresAt}
		if err := config.DB.Create(&entry).Error; err != nil {
			utils.LogError("Failed to blacklist refresh token: %v", err)
		}
	}

	setRefreshCookie(c, "", -1)
	utils.Success(c, "Logged out successfully", nil)
}

// RegisterRequest is the body for admin account creation
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RegisterAdmin creates an admin account. Callers must already be admins;
// CreateSampleAdmin bootstraps the first one.
func RegisterAdmin(c *gin.Context) {
	utils.LogInfo("RegisterAdmin called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if ok, msg := utils.ValidateEmail(req.Email); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to create admin", err.Error())
		return
	}
	if count > 0 {
		utils.Conflict(c, "User with this email or username already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalServerError(c, "Failed to create admin", nil)
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   true,
		IsActive:  true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create admin: %v", err)
		utils.InternalServerError(c, "Failed to create admin", err.Error())
		return
	}

	utils.LogInfo("Created admin %d (%s)", user.ID, user.Email)
	utils.Created(c, "Admin created successfully", gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// CreateSampleAdmin bootstraps the first admin account from env vars when no
// admin exists yet. Runs at startup.
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Email:    strings.ToLower(email),
		Password: hashed,
		IsAdmin:  true,
		IsActive: true,
	}
	return config.DB.Create(&admin).Error
}

// GoogleUserInfo is the profile payload from Google's userinfo endpoint
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// GoogleLogin starts the Google sign-in flow for the admin panel
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback finishes the Google sign-in flow. Only accounts that
// already exist as admins may sign in this way; there is no provisioning.
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_admin = ?", strings.ToLower(googleUser.Email), true).
		First(&user).Error; err != nil {
		utils.LogError("Google sign-in for non-admin account: %s", googleUser.Email)
		utils.Forbidden(c, "No admin account for this email")
		return
	}

	if user.GoogleID == "" {
		config.DB.Model(&user).Update("google_id", googleUser.ID)
	}

	accessToken, err := utils.GenerateAccessToken(&user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(&user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())
	setRefreshCookie(c, refreshToken, int(utils.RefreshTokenTTL.Seconds()))

	utils.Success(c, "Login successful", gin.H{"access_token": accessToken})
}
