package controllers

import (
	"Meeple/middleware"
	"Meeple/services/scorecache"
	"Meeple/services/scores"
	"Meeple/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type rateInput struct {
	Score int `json:"score" binding:"required"`
}

// @Summary Rate a game
// @Description Creates the caller's score for the game or overwrites the previous one. Scores run 1..10.
// @Tags scores
// @Accept json
// @Produce json
// @Param game_id path int true "External game id"
// @Success 200 {object} postgres.UserScore
// @Failure 400 {object} object{error=string}
// @Router /api/scores/rate/{game_id} [post]
// @Security ApiKeyAuth
func RateGame(db *gorm.DB, cache *scorecache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		gameID, ok := utils.ParseIntParam(c, "game_id")
		if !ok {
			return
		}

		var input rateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		record, err := scores.Rate(db, profile.ID, gameID, input.Score)
		if err != nil {
			if errors.Is(err, scores.ErrScoreOutOfRange) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving score"})
			return
		}

		cache.Invalidate(c.Request.Context(), gameID)
		c.JSON(http.StatusOK, record)
	}
}

// @Summary Get the average score of a game
// @Description Mean and count over every rating. 204 when nobody rated the game yet.
// @Tags scores
// @Produce json
// @Param game_id path int true "External game id"
// @Success 200 {object} scores.Average
// @Success 204 "no ratings"
// @Router /api/scores/score/{game_id} [get]
// @Security ApiKeyAuth
func AverageScore(db *gorm.DB, cache *scorecache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, ok := utils.ParseIntParam(c, "game_id")
		if !ok {
			return
		}

		if avg, hit := cache.GetAverage(c.Request.Context(), gameID); hit {
			c.JSON(http.StatusOK, avg)
			return
		}

		avg, err := scores.AverageScore(db, gameID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing average"})
			return
		}
		if avg.Count == 0 {
			c.Status(http.StatusNoContent)
			return
		}

		cache.SetAverage(c.Request.Context(), gameID, avg)
		c.JSON(http.StatusOK, avg)
	}
}

// @Summary Get the caller's score for a game
// @Tags scores
// @Produce json
// @Success 200 {object} postgres.UserScore
// @Success 204 "not rated"
// @Router /api/scores/my_score/{game_id} [get]
// @Security ApiKeyAuth
func MyScore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		gameID, ok := utils.ParseIntParam(c, "game_id")
		if !ok {
			return
		}

		record, err := scores.ScoreOf(db, profile.ID, gameID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching score"})
			return
		}
		if record == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// ScoresByGame lists every rating recorded for a game.
func ScoresByGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, ok := utils.ParseIntParam(c, "game_id")
		if !ok {
			return
		}
		list, err := scores.ByGame(db, gameID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching scores"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ScoresByUser lists every rating a user has recorded.
func ScoresByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.ParseUintParam(c, "user_id")
		if !ok {
			return
		}
		list, err := scores.ByUser(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching scores"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Delete the caller's score for a game
// @Description Removing a score that does not exist still returns 204.
// @Tags scores
// @Param game_id path int true "External game id"
// @Success 204 "deleted"
// @Router /api/scores/delete/{game_id} [delete]
// @Security ApiKeyAuth
func DeleteScore(db *gorm.DB, cache *scorecache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := middleware.CurrentProfile(c)
		gameID, ok := utils.ParseIntParam(c, "game_id")
		if !ok {
			return
		}

		if err := scores.Delete(db, profile.ID, gameID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting score"})
			return
		}
		cache.Invalidate(c.Request.Context(), gameID)
		c.Status(http.StatusNoContent)
	}
}
