// Package requests implements the participation workflow: a user asks to
// join an event, the organizer accepts or declines, the user may withdraw.
package requests

import (
	models "Meeple/models/postgres"
	"Meeple/services/events"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrOwnEvent         = errors.New("cannot request to join your own event")
	ErrAlreadyRequested = errors.New("a request for this event was already sent")
	ErrNotFound         = errors.New("participation request not found")
	ErrNotOrganizer     = errors.New("only the event organizer can do this")
)

// Join files a pending request for the event. Organizers cannot join their
// own events and a user gets at most one request per event; the unique
// (user_id, event_id) index backs the duplicate check under concurrency.
func Join(db *gorm.DB, userID, eventID uint, message string) (*models.ParticipationRequest, error) {
	event, err := events.Get(db, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID == userID {
		return nil, ErrOwnEvent
	}

	var existing models.ParticipationRequest
	err = db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyRequested
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := models.ParticipationRequest{
		UserID:  userID,
		EventID: eventID,
		Message: message,
	}
	if err := db.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRequested
		}
		return nil, err
	}
	return &request, nil
}

// Respond records the organizer's decision on a user's request. Responding
// again overwrites the previous decision; re-handling is allowed.
func Respond(db *gorm.DB, actorID, eventID, userID uint, answer string, accept bool) (*models.ParticipationRequest, error) {
	event, err := events.Get(db, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, ErrNotOrganizer
	}

	var request models.ParticipationRequest
	err = db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	request.Answer = answer
	request.IsAccepted = &accept
	request.IsHandled = true
	if err := db.Save(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Unhandled lists the requests the organizer has not answered yet.
func Unhandled(db *gorm.DB, actorID, eventID uint) ([]models.ParticipationRequest, error) {
	return listForOrganizer(db, actorID, eventID, "is_handled = ?", false)
}

// All lists every request on the event, handled or not.
func All(db *gorm.DB, actorID, eventID uint) ([]models.ParticipationRequest, error) {
	return listForOrganizer(db, actorID, eventID, "")
}

func listForOrganizer(db *gorm.DB, actorID, eventID uint, cond string, args ...interface{}) ([]models.ParticipationRequest, error) {
	event, err := events.Get(db, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, ErrNotOrganizer
	}

	query := db.Where("event_id = ?", eventID)
	if cond != "" {
		query = query.Where(cond, args...)
	}
	var list []models.ParticipationRequest
	err = query.Find(&list).Error
	return list, err
}

// Participators lists the accepted requests for an event. Anyone may look.
func Participators(db *gorm.DB, eventID uint) ([]models.ParticipationRequest, error) {
	if _, err := events.Get(db, eventID); err != nil {
		return nil, err
	}
	var list []models.ParticipationRequest
	err := db.Where("event_id = ? AND is_accepted = ?", eventID, true).Find(&list).Error
	return list, err
}

// MyStatus returns the caller's own request for the event, nil when they
// never asked. The organizer has no request of their own, so they get nil.
func MyStatus(db *gorm.DB, userID, eventID uint) (*models.ParticipationRequest, error) {
	event, err := events.Get(db, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID == userID {
		return nil, nil
	}

	var request models.ParticipationRequest
	err = db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ByUser lists every request the user has filed, across events.
func ByUser(db *gorm.DB, userID uint) ([]models.ParticipationRequest, error) {
	var list []models.ParticipationRequest
	err := db.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

// Withdraw deletes the caller's request for the event. Withdrawing a
// request that does not exist is a no-op.
func Withdraw(db *gorm.DB, userID, eventID uint) error {
	return db.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.ParticipationRequest{}).Error
}
