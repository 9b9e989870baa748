package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub-chat/auth"
	"mentorhub-chat/store"
)

// Login verifies credentials and hands out a bearer token. Unknown
// usernames and wrong passwords get the same answer, so the endpoint
// cannot be used to enumerate accounts.
func Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}
	if err := auth.ValidateLogin(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	user, err := Store.FindUser(req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}
	if err != nil || !auth.ComparePassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.Username, TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"username": user.Username},
	})
}
