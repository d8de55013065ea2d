package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Annamalai555/mernstack-project/auth"
	"github.com/Annamalai555/mernstack-project/models"
	"github.com/Annamalai555/mernstack-project/notifier"
	"github.com/Annamalai555/mernstack-project/store"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     int    `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(users store.UserStore, mailer notifier.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name, email and password are required"})
			return
		}

		if _, err := users.FindUserByEmail(c.Request.Context(), input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		} else if err != store.ErrNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		// Role is elevated only when explicitly requested as admin.
		role := models.RoleUser
		if input.Role == models.RoleAdmin {
			role = models.RoleAdmin
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Role:     role,
		}
		if err := users.InsertUser(c.Request.Context(), &user); err != nil {
			if err == store.ErrDuplicate {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		// Two outbound emails per registration, best-effort with no retry.
		if err := mailer.SendWelcome(user.Name, user.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if err := mailer.SendNewUserAlert(user.Name, user.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    user.Public(),
		})
	}
}

// POST /api/auth/login
func Login(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
			return
		}

		// Same message for unknown email and wrong password.
		user, err := users.FindUserByEmail(c.Request.Context(), input.Email)
		if err == store.ErrNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user.Public(),
		})
	}
}
