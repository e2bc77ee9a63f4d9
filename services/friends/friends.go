// Package friends implements the friendship graph: directed request edges
// that become an undirected friend relation once accepted.
package friends

import (
	models "Meeple/models/postgres"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrSelfRequest   = errors.New("cannot send a friend request to yourself")
	ErrAlreadyExists = errors.New("a friend request between these users already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotFound      = errors.New("friend request not found")
)

// SendRequest creates a pending edge from user1 to user2. An existing edge
// in either direction blocks the new one, so crossed requests cannot pile
// up. The unique (user1_id, user2_id) index backs the same-direction check
// under concurrency.
func SendRequest(db *gorm.DB, user1ID, user2ID uint, message string) (*models.FriendshipStatus, error) {
	if user1ID == user2ID {
		return nil, ErrSelfRequest
	}

	var recipient models.Profile
	if err := db.First(&recipient, user2ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing models.FriendshipStatus
	err := db.Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
		user1ID, user2ID, user2ID, user1ID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	edge := models.FriendshipStatus{User1ID: user1ID, User2ID: user2ID, Message: message}
	if err := db.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return &edge, nil
}

// AcceptRequest marks the pending edge sent to the actor by user1 as
// accepted and clears its message. Only the recipient can accept.
func AcceptRequest(db *gorm.DB, actorID, user1ID uint) (*models.FriendshipStatus, error) {
	var edge models.FriendshipStatus
	err := db.Where("user1_id = ? AND user2_id = ? AND is_accepted = ?",
		user1ID, actorID, false).First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	edge.IsAccepted = true
	edge.Message = ""
	if err := db.Save(&edge).Error; err != nil {
		return nil, err
	}
	return &edge, nil
}

// Incoming lists pending requests sent to the user.
func Incoming(db *gorm.DB, userID uint) ([]models.FriendshipStatus, error) {
	var list []models.FriendshipStatus
	err := db.Where("user2_id = ? AND is_accepted = ?", userID, false).Find(&list).Error
	return list, err
}

// Outgoing lists pending requests the user has sent.
func Outgoing(db *gorm.DB, userID uint) ([]models.FriendshipStatus, error) {
	var list []models.FriendshipStatus
	err := db.Where("user1_id = ? AND is_accepted = ?", userID, false).Find(&list).Error
	return list, err
}

// FriendsOf returns the profiles on the other end of every accepted edge
// touching the user, either direction.
func FriendsOf(db *gorm.DB, userID uint) ([]models.Profile, error) {
	var edges []models.FriendshipStatus
	err := db.Where("(user1_id = ? OR user2_id = ?) AND is_accepted = ?",
		userID, userID, true).Find(&edges).Error
	if err != nil {
		return nil, err
	}

	friendIDs := make([]uint, 0, len(edges))
	for _, edge := range edges {
		if edge.User1ID == userID {
			friendIDs = append(friendIDs, edge.User2ID)
		} else {
			friendIDs = append(friendIDs, edge.User1ID)
		}
	}

	friends := []models.Profile{}
	if len(friendIDs) > 0 {
		if err := db.Where("id IN ?", friendIDs).Find(&friends).Error; err != nil {
			return nil, err
		}
	}
	return friends, nil
}

// Remove deletes the edge between the actor and the other user, whichever
// direction it points. Rejecting a request and unfriending are the same
// operation.
func Remove(db *gorm.DB, actorID, otherID uint) error {
	result := db.Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
		actorID, otherID, otherID, actorID).Delete(&models.FriendshipStatus{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
