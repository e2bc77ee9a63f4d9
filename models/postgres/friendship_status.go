package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

/*
 * 'FriendshipStatus' is a directed friend-request edge: User1 sent it,
 * User2 decides. Once IsAccepted is true both ends count as friends; the
 * symmetric friend list is derived by querying both directions.
 */
type FriendshipStatus struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	User1ID    uint      `gorm:"not null;uniqueIndex:idx_friendships_pair" json:"user1"`
	User2ID    uint      `gorm:"not null;uniqueIndex:idx_friendships_pair" json:"user2"`
	Message    string    `gorm:"size:200" json:"message"`
	IsAccepted bool      `gorm:"default:false;index:idx_friendships_accepted" json:"is_accepted"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	User1 Profile `gorm:"foreignKey:User1ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User2 Profile `gorm:"foreignKey:User2ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// GORM hook to ensure both ends of the edge are different users
func (f *FriendshipStatus) BeforeSave(tx *gorm.DB) error {
	if f.User1ID == f.User2ID {
		return errors.New("a friendship cannot reference the same user twice")
	}
	return nil
}
