// Package scores implements the rating ledger: one integer score per
// (user, game) pair, overwritten in place when the user rates again.
package scores

import (
	models "Meeple/models/postgres"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Valid score bounds, the usual 1..10 board-game scale.
const (
	MinScore = 1
	MaxScore = 10
)

var ErrScoreOutOfRange = errors.New("score must be between 1 and 10")

// Average is the aggregate returned for a game.
type Average struct {
	Value float64 `json:"score_value"`
	Count int64   `json:"score_number"`
}

// Rate creates or overwrites the caller's score for a game. The write is a
// single ON CONFLICT upsert on the (user_id, game_id) unique index, so two
// concurrent ratings can never leave two rows behind.
func Rate(db *gorm.DB, userID uint, gameID int, score int) (*models.UserScore, error) {
	if score < MinScore || score > MaxScore {
		return nil, ErrScoreOutOfRange
	}

	record := models.UserScore{UserID: userID, GameID: gameID, Score: score}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the stored row even when the upsert took
	// the update path.
	var stored models.UserScore
	if err := db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// AverageScore returns the mean score and rating count for a game. A game
// nobody rated yet yields a zero Count and no error; the handler turns
// that into 204.
func AverageScore(db *gorm.DB, gameID int) (Average, error) {
	var avg Average
	err := db.Model(&models.UserScore{}).
		Where("game_id = ?", gameID).
		Count(&avg.Count).Error
	if err != nil || avg.Count == 0 {
		return avg, err
	}

	err = db.Model(&models.UserScore{}).
		Select("AVG(score)").
		Where("game_id = ?", gameID).
		Scan(&avg.Value).Error
	return avg, err
}

// ScoreOf returns the caller's score for a game, or nil when the user has
// not rated it. Absence is not an error.
func ScoreOf(db *gorm.DB, userID uint, gameID int) (*models.UserScore, error) {
	var score models.UserScore
	err := db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// ByGame lists every score recorded for a game.
func ByGame(db *gorm.DB, gameID int) ([]models.UserScore, error) {
	var list []models.UserScore
	err := db.Where("game_id = ?", gameID).Find(&list).Error
	return list, err
}

// ByUser lists every score a user has recorded.
func ByUser(db *gorm.DB, userID uint) ([]models.UserScore, error) {
	var list []models.UserScore
	err := db.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

// Delete removes the caller's score for a game. Deleting an absent score
// is a no-op, not an error.
func Delete(db *gorm.DB, userID uint, gameID int) error {
	return db.Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.UserScore{}).Error
}
