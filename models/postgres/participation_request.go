package postgres

import (
	"time"
)

/*
 * 'ParticipationRequest' is a user's request to join an event. IsAccepted
 * is tri-state: nil while pending, then the organizer's decision. The
 * (user, event) pair is unique so a double-submit can never create two rows.
 */
type ParticipationRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_requests_user_event" json:"user"`
	EventID    uint      `gorm:"not null;uniqueIndex:idx_requests_user_event" json:"event"`
	Message    string    `gorm:"size:200" json:"message"`
	Answer     string    `gorm:"size:200" json:"answer"`
	IsAccepted *bool     `json:"is_accepted"`
	IsHandled  bool      `gorm:"default:false;index:idx_requests_handled" json:"is_handled"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	User  Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Event Event   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}
