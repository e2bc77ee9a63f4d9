package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// Sex options stored on a profile. 'U' is the default when the user
// does not want to say.
const (
	SexMale        = "M"
	SexFemale      = "F"
	SexUnspecified = "U"
)

/*
 * 'Profile' contains the account and public data of a user. It is
 * referenced by Event, ParticipationRequest, FriendshipStatus and UserScore.
 */
type Profile struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FirstName    string     `gorm:"size:30" json:"first_name"`
	LastName     string     `gorm:"size:30" json:"last_name"`
	Bio          string     `gorm:"size:100" json:"bio"`
	City         string     `gorm:"size:30;index" json:"city"`
	Sex          string     `gorm:"size:1;default:U" json:"sex"`
	Birthdate    *time.Time `json:"birthdate"`
	// Game ids the user marked as favorites, kept as a jsonb blob
	FavoriteGames datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"favorite_games"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	OrganizedEvents []Event                `gorm:"foreignKey:OrganizerID" json:"-"`
	Requests        []ParticipationRequest `gorm:"foreignKey:UserID" json:"-"`
	Scores          []UserScore            `gorm:"foreignKey:UserID" json:"-"`
	SentEdges       []FriendshipStatus     `gorm:"foreignKey:User1ID" json:"-"`
	ReceivedEdges   []FriendshipStatus     `gorm:"foreignKey:User2ID" json:"-"`
}

// FullName joins the two name parts, skipping the space when one is empty.
func (p *Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
