package postgres

import (
	"time"
)

/*
 * 'Event' is a board-game meetup owned by an organizer. The game being
 * played is an external catalog id, not a row we own.
 */
type Event struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Address     string `gorm:"not null" json:"address"`
	AddressInfo string `json:"address_additional_info"`
	City        string `gorm:"size:30;index" json:"city"`
	Description string `gorm:"size:400" json:"description"`
	// Calendar day of the meetup plus the start time as "HH:MM"
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	StartTime   string    `gorm:"size:5" json:"time"`
	MinPlayers  int       `json:"min_players"`
	MaxPlayers  int       `json:"max_players"`
	MinPlayTime int       `json:"min_play_time"`
	MaxPlayTime int       `json:"max_play_time"`
	IsActive    bool      `gorm:"default:true;index:idx_events_active" json:"is_active"`
	GameID      int       `gorm:"not null;index:idx_events_game" json:"game"`
	OrganizerID uint      `gorm:"not null;index:idx_events_organizer" json:"organizer"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Organizer Profile                `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE" json:"-"`
	Requests  []ParticipationRequest `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
