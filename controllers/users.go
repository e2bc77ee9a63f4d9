package controllers

import (
	"Meeple/middleware"
	models "Meeple/models/postgres"
	"Meeple/services/friends"
	"Meeple/utils"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type registerInput struct {
	Email           string `json:"email" binding:"required,email,max=100"`
	Password        string `json:"password" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"max=30"`
	LastName        string `json:"last_name" binding:"max=30"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type profileUpdateInput struct {
	FirstName     *string          `json:"first_name" binding:"omitempty,max=30"`
	LastName      *string          `json:"last_name" binding:"omitempty,max=30"`
	Bio           *string          `json:"bio" binding:"omitempty,max=100"`
	City          *string          `json:"city" binding:"omitempty,max=30"`
	Sex           *string          `json:"sex" binding:"omitempty,oneof=M F U"`
	Birthdate     *time.Time       `json:"birthdate"`
	FavoriteGames *json.RawMessage `json:"favorite_games"`
}

// @Summary Register a new account
// @Description Creates a profile from email, password and name. Password and confirmation must match.
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} postgres.Profile
// @Failure 400 {object} object{error=string}
// @Router /register [post]
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"confirm_password": "Passwords do not match"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
			return
		}

		profile := models.Profile{
			Email:        strings.ToLower(input.Email),
			PasswordHash: string(hash),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Sex:          models.SexUnspecified,
		}
		if err := db.Create(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating account"})
			return
		}

		c.JSON(http.StatusCreated, profile)
	}
}

// @Summary Log in
// @Description Verifies the credentials and returns a bearer token plus the account id.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} object{token=string,id=integer}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var profile models.Profile
		if err := db.Where("email = ?", strings.ToLower(input.Email)).First(&profile).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := middleware.GenerateToken(profile.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error signing token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "id": profile.ID})
	}
}

// @Summary Get the authenticated profile
// @Tags users
// @Produce json
// @Success 200 {object} postgres.Profile
// @Router /api/me [get]
// @Security ApiKeyAuth
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentProfile(c))
	}
}

// @Summary Update the authenticated profile
// @Description Partial update; only the supplied fields change. Ownership is implicit, other profiles cannot be touched.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} postgres.Profile
// @Failure 400 {object} object{error=string}
// @Router /api/me [patch]
// @Security ApiKeyAuth
func UpdateMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)

		var input profileUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.FirstName != nil {
			profile.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			profile.LastName = *input.LastName
		}
		if input.Bio != nil {
			profile.Bio = *input.Bio
		}
		if input.City != nil {
			profile.City = *input.City
		}
		if input.Sex != nil {
			profile.Sex = *input.Sex
		}
		if input.Birthdate != nil {
			profile.Birthdate = input.Birthdate
		}
		if input.FavoriteGames != nil {
			profile.FavoriteGames = datatypes.JSON(*input.FavoriteGames)
		}

		if err := db.Save(profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// @Summary List profiles
// @Description Optional ?city= filter and ?search= over first and last name.
// @Tags users
// @Produce json
// @Success 200 {array} postgres.Profile
// @Router /api/profiles [get]
// @Security ApiKeyAuth
func ListProfiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Profile{})
		if city := c.Query("city"); city != "" {
			query = query.Where("city = ?", city)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
		}

		var profiles []models.Profile
		if err := query.Find(&profiles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing profiles"})
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}

// @Summary Get a profile by id
// @Tags users
// @Produce json
// @Success 200 {object} postgres.Profile
// @Failure 404 {object} object{error=string}
// @Router /api/profiles/{user_id} [get]
// @Security ApiKeyAuth
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}

		var profile models.Profile
		if err := db.First(&profile, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// @Summary Get a user's friend list
// @Description Profiles on the other end of every accepted friendship, both directions merged.
// @Tags friends
// @Produce json
// @Success 200 {array} postgres.Profile
// @Router /api/profiles/{user_id}/friendlist [get]
// @Security ApiKeyAuth
func FriendList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}

		list, err := friends.FriendsOf(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friend list"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
