// Package events implements the event registry: meetup records owned by
// an organizer, searched with optional filters and disabled in place.
package events

import (
	models "Meeple/models/postgres"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrNotOrganizer = errors.New("only the organizer can modify this event")
)

// Input carries the client-supplied event fields. It deliberately has no
// organizer field: ownership always comes from the authenticated caller.
type Input struct {
	Name        string    `json:"name" binding:"required,max=50"`
	Address     string    `json:"address" binding:"required"`
	AddressInfo string    `json:"address_additional_info"`
	City        string    `json:"city" binding:"max=30"`
	Description string    `json:"description" binding:"max=400"`
	Date        time.Time `json:"date" binding:"required"`
	StartTime   string    `json:"time"`
	MinPlayers  int       `json:"min_players"`
	MaxPlayers  int       `json:"max_players"`
	MinPlayTime int       `json:"min_play_time"`
	MaxPlayTime int       `json:"max_play_time"`
	GameID      int       `json:"game" binding:"required"`
}

// Filters narrows a Search; nil/zero members are skipped.
type Filters struct {
	GameID      *int
	OrganizerID *uint
	IsActive    *bool
	City        string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// Create stores a new event. The organizer is the acting identity and the
// event starts active regardless of anything the payload claimed.
func Create(db *gorm.DB, organizerID uint, input Input) (*models.Event, error) {
	event := models.Event{
		Name:        input.Name,
		Address:     input.Address,
		AddressInfo: input.AddressInfo,
		City:        input.City,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		MinPlayers:  input.MinPlayers,
		MaxPlayers:  input.MaxPlayers,
		MinPlayTime: input.MinPlayTime,
		MaxPlayTime: input.MaxPlayTime,
		GameID:      input.GameID,
		OrganizerID: organizerID,
		IsActive:    true,
	}
	if err := db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Get returns one event by id.
func Get(db *gorm.DB, eventID uint) (*models.Event, error) {
	var event models.Event
	if err := db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Search lists events matching the given filters.
func Search(db *gorm.DB, filters Filters) ([]models.Event, error) {
	query := db.Model(&models.Event{})
	if filters.GameID != nil {
		query = query.Where("game_id = ?", *filters.GameID)
	}
	if filters.OrganizerID != nil {
		query = query.Where("organizer_id = ?", *filters.OrganizerID)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.City != "" {
		query = query.Where("city = ?", filters.City)
	}
	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("date <= ?", *filters.DateTo)
	}

	var list []models.Event
	err := query.Order("date").Find(&list).Error
	return list, err
}

// ByOrganizer lists every event a user organizes.
func ByOrganizer(db *gorm.DB, organizerID uint) ([]models.Event, error) {
	var list []models.Event
	err := db.Where("organizer_id = ?", organizerID).Order("date").Find(&list).Error
	return list, err
}

// Update rewrites the event fields. The actor must be the organizer; the
// organizer itself never changes.
func Update(db *gorm.DB, actorID, eventID uint, input Input) (*models.Event, error) {
	event, err := Get(db, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, ErrNotOrganizer
	}

	event.Name = input.Name
	event.Address = input.Address
	event.AddressInfo = input.AddressInfo
	event.City = input.City
	event.Description = input.Description
	event.Date = input.Date
	event.StartTime = input.StartTime
	event.MinPlayers = input.MinPlayers
	event.MaxPlayers = input.MaxPlayers
	event.MinPlayTime = input.MinPlayTime
	event.MaxPlayTime = input.MaxPlayTime
	event.GameID = input.GameID

	if err := db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Deactivate soft-disables the event. Events are never hard-deleted so
// their participation history stays queryable.
func Deactivate(db *gorm.DB, actorID, eventID uint) error {
	event, err := Get(db, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		return ErrNotOrganizer
	}
	return db.Model(event).Update("is_active", false).Error
}
