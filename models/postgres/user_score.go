package postgres

import (
	"time"
)

/*
 * 'UserScore' is one user's rating of one game from the external catalog.
 * The (user, game) pair is unique; rating again overwrites the score.
 */
type UserScore struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_scores_user_game" json:"user"`
	GameID    int       `gorm:"not null;uniqueIndex:idx_user_scores_user_game;index:idx_user_scores_game" json:"game"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationship with the rating user
	User Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
