package controllers

import (
	"Meeple/middleware"
	models "Meeple/models/postgres"
	"Meeple/services/events"
	"Meeple/services/requests"
	"Meeple/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type participateInput struct {
	Message string `json:"message" binding:"max=200"`
}

type respondInput struct {
	Answer     string `json:"answer" binding:"max=200"`
	IsAccepted *bool  `json:"is_accepted" binding:"required"`
}

// @Summary Request to join an event
// @Description Files a pending participation request. Organizers cannot join their own event; one request per (user, event).
// @Tags requests
// @Accept json
// @Produce json
// @Param event_id path int true "Event id"
// @Success 201 {object} postgres.ParticipationRequest
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/requests/participate/{event_id} [post]
// @Security ApiKeyAuth
func Participate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		var input participateInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		request, err := requests.Join(db, profile.ID, eventID, input.Message)
		if err != nil {
			switch {
			case errors.Is(err, events.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, requests.ErrOwnEvent), errors.Is(err, requests.ErrAlreadyRequested):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending request"})
			}
			return
		}
		c.JSON(http.StatusCreated, request)
	}
}

// @Summary Answer a participation request
// @Description Organizer-only. Sets the answer text and the decision and marks the request handled; answering again overwrites the decision.
// @Tags requests
// @Accept json
// @Produce json
// @Param event_id path int true "Event id"
// @Param user_id path int true "Requesting user id"
// @Success 200 {object} postgres.ParticipationRequest
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/requests/respond/{event_id}/{user_id} [patch]
// @Security ApiKeyAuth
func RespondToRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}
		userID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}

		var input respondInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		request, err := requests.Respond(db, profile.ID, eventID, userID, input.Answer, *input.IsAccepted)
		if err != nil {
			switch {
			case errors.Is(err, events.ErrNotFound), errors.Is(err, requests.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, requests.ErrNotOrganizer):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error answering request"})
			}
			return
		}
		c.JSON(http.StatusOK, request)
	}
}

// UnhandledRequests lists the requests the organizer has not answered yet.
func UnhandledRequests(db *gorm.DB) gin.HandlerFunc {
	return listEventRequests(db, requests.Unhandled)
}

// AllRequests lists every request on the event, handled or not.
func AllRequests(db *gorm.DB) gin.HandlerFunc {
	return listEventRequests(db, requests.All)
}

func listEventRequests(db *gorm.DB, fetch func(*gorm.DB, uint, uint) ([]models.ParticipationRequest, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		list, err := fetch(db, profile.ID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, events.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, requests.ErrNotOrganizer):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching requests"})
			}
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary List accepted participators of an event
// @Tags requests
// @Produce json
// @Param event_id path int true "Event id"
// @Success 200 {array} postgres.ParticipationRequest
// @Failure 404 {object} object{error=string}
// @Router /api/requests/event/{event_id}/participators [get]
// @Security ApiKeyAuth
func Participators(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		list, err := requests.Participators(db, eventID)
		if err != nil {
			if errors.Is(err, events.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching participators"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Get the caller's request status for an event
// @Description 204 when the caller never asked to join, and for the organizer, who has no request of their own.
// @Tags requests
// @Produce json
// @Param event_id path int true "Event id"
// @Success 200 {object} postgres.ParticipationRequest
// @Success 204 "no request"
// @Router /api/requests/event/{event_id}/my_status [get]
// @Security ApiKeyAuth
func MyRequestStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		request, err := requests.MyStatus(db, profile.ID, eventID)
		if err != nil {
			if errors.Is(err, events.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching request"})
			return
		}
		if request == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, request)
	}
}

// MyRequests lists the caller's participation requests across all events.
func MyRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		list, err := requests.ByUser(db, profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching requests"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Withdraw a participation request
// @Description Deletes the caller's request for the event; withdrawing twice is still 204.
// @Tags requests
// @Param event_id path int true "Event id"
// @Success 204 "withdrawn"
// @Router /api/requests/delete/{event_id} [delete]
// @Security ApiKeyAuth
func WithdrawRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		if err := requests.Withdraw(db, profile.ID, eventID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error withdrawing request"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
