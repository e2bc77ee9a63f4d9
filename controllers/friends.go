package controllers

import (
	"Meeple/middleware"
	"Meeple/services/friends"
	"Meeple/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type friendRequestInput struct {
	Message string `json:"message" binding:"max=200"`
}

// @Summary Send a friend request
// @Description Creates a pending request to the user in the path. Fails on self-requests and when an edge already exists in either direction.
// @Tags friends
// @Accept json
// @Produce json
// @Param user_id path int true "Recipient user id"
// @Success 201 {object} postgres.FriendshipStatus
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/friends/add/{user_id} [post]
// @Security ApiKeyAuth
func SendFriendRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		recipientID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}

		// Body is optional; an empty request carries no message.
		var input friendRequestInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		edge, err := friends.SendRequest(db, profile.ID, recipientID, input.Message)
		if err != nil {
			switch {
			case errors.Is(err, friends.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, friends.ErrSelfRequest), errors.Is(err, friends.ErrAlreadyExists):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending friend request"})
			}
			return
		}

		c.JSON(http.StatusCreated, edge)
	}
}

// @Summary Accept a friend request
// @Description The recipient accepts the pending request sent by the user in the path; the message is cleared.
// @Tags friends
// @Produce json
// @Param user_id path int true "Sender user id"
// @Success 200 {object} postgres.FriendshipStatus
// @Failure 404 {object} object{error=string}
// @Router /api/friends/accept/{user_id} [put]
// @Security ApiKeyAuth
func AcceptFriendRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		senderID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}

		edge, err := friends.AcceptRequest(db, profile.ID, senderID)
		if err != nil {
			if errors.Is(err, friends.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error accepting friend request"})
			return
		}

		c.JSON(http.StatusOK, edge)
	}
}

// IncomingFriendRequests lists the pending requests sent to the caller.
func IncomingFriendRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		list, err := friends.Incoming(db, profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friend requests"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// OutgoingFriendRequests lists the pending requests the caller has sent.
func OutgoingFriendRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		list, err := friends.Outgoing(db, profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friend requests"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Remove a friendship or reject a request
// @Description Deletes the edge between the caller and the user in the path, whichever direction it points.
// @Tags friends
// @Param user_id path int true "Other user id"
// @Success 204 "deleted"
// @Failure 404 {object} object{error=string}
// @Router /api/friends/remove/{user_id} [delete]
// @Security ApiKeyAuth
func RemoveFriend(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		otherID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}

		if err := friends.Remove(db, profile.ID, otherID); err != nil {
			if errors.Is(err, friends.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing friendship"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
