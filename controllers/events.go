package controllers

import (
	"Meeple/middleware"
	"Meeple/services/events"
	"Meeple/utils"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create an event
// @Description The caller becomes the organizer and the event starts active, whatever the payload says.
// @Tags events
// @Accept json
// @Produce json
// @Success 201 {object} postgres.Event
// @Failure 400 {object} object{error=string}
// @Router /api/events [post]
// @Security ApiKeyAuth
func CreateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)

		var input events.Input
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event, err := events.Create(db, profile.ID, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

// @Summary Search events
// @Description Optional filters: game, organizer, is_active, city, date_from, date_to (YYYY-MM-DD).
// @Tags events
// @Produce json
// @Success 200 {array} postgres.Event
// @Failure 400 {object} object{error=string}
// @Router /api/events [get]
// @Security ApiKeyAuth
func SearchEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := parseEventFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		list, err := events.Search(db, filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching events"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func parseEventFilters(c *gin.Context) (events.Filters, error) {
	var filters events.Filters

	if raw := c.Query("game"); raw != "" {
		gameID, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("invalid game filter")
		}
		filters.GameID = &gameID
	}
	if raw := c.Query("organizer"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filters, errors.New("invalid organizer filter")
		}
		orgID := uint(id)
		filters.OrganizerID = &orgID
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errors.New("invalid is_active filter")
		}
		filters.IsActive = &active
	}
	filters.City = c.Query("city")
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, errors.New("invalid date_from filter")
		}
		filters.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, errors.New("invalid date_to filter")
		}
		filters.DateTo = &to
	}

	return filters, nil
}

// GetEvent returns one event by id.
func GetEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		event, err := events.Get(db, eventID)
		if err != nil {
			if errors.Is(err, events.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching event"})
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// MyEvents lists the events the caller organizes.
func MyEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		list, err := events.ByOrganizer(db, profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// EventsByUser lists the events organized by the user in the path.
func EventsByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := utils.ParseUintParam(c, "org_id")
		if !ok {
			return
		}
		list, err := events.ByOrganizer(db, orgID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Edit an event
// @Description Organizer-only. Authorization comes from the token, never from an organizer field in the payload.
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path int true "Event id"
// @Success 200 {object} postgres.Event
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/events/{event_id}/edit [put]
// @Security ApiKeyAuth
func EditEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		var input events.Input
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event, err := events.Update(db, profile.ID, eventID, input)
		if err != nil {
			switch {
			case errors.Is(err, events.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, events.ErrNotOrganizer):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event"})
			}
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// @Summary Deactivate an event
// @Description Organizer-only soft delete; the event row and its requests stay around.
// @Tags events
// @Param event_id path int true "Event id"
// @Success 204 "deactivated"
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/events/{event_id} [delete]
// @Security ApiKeyAuth
func DeactivateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		eventID, ok := utils.ParseUintParam(c, "event_id")
		if !ok {
			return
		}

		if err := events.Deactivate(db, profile.ID, eventID); err != nil {
			switch {
			case errors.Is(err, events.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, events.ErrNotOrganizer):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deactivating event"})
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}
