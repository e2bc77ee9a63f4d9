package requests_test

import (
	models "Meeple/models/postgres"
	"Meeple/services/events"
	"Meeple/services/requests"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Event{},
		&models.ParticipationRequest{},
		&models.FriendshipStatus{},
		&models.UserScore{},
	))
	return db
}

func createProfile(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()
	profile := models.Profile{
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "hashedpassword",
		FirstName:    name,
	}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}

func createEvent(t *testing.T, db *gorm.DB, organizerID uint) *models.Event {
	t.Helper()
	event, err := events.Create(db, organizerID, events.Input{
		Name:    "Catan night",
		Address: "Calle Mayor 1",
		City:    "Zaragoza",
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		GameID:  13,
	})
	require.NoError(t, err)
	return event
}

func TestJoinOwnEvent(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	event := createEvent(t, db, organizer.ID)

	_, err := requests.Join(db, organizer.ID, event.ID, "please?")
	assert.ErrorIs(t, err, requests.ErrOwnEvent)
}

func TestJoinMissingEvent(t *testing.T) {
	db := openTestDB(t)
	user := createProfile(t, db, "uma")

	_, err := requests.Join(db, user.ID, 9999, "")
	assert.ErrorIs(t, err, events.ErrNotFound)
}

func TestJoinDuplicate(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	user := createProfile(t, db, "uma")
	event := createEvent(t, db, organizer.ID)

	request, err := requests.Join(db, user.ID, event.ID, "count me in")
	require.NoError(t, err)
	assert.Nil(t, request.IsAccepted, "a new request starts pending")
	assert.False(t, request.IsHandled)

	_, err = requests.Join(db, user.ID, event.ID, "again")
	assert.ErrorIs(t, err, requests.ErrAlreadyRequested)
}

func TestRespond(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	user := createProfile(t, db, "uma")
	stranger := createProfile(t, db, "sven")
	event := createEvent(t, db, organizer.ID)

	_, err := requests.Join(db, user.ID, event.ID, "count me in")
	require.NoError(t, err)

	_, err = requests.Respond(db, stranger.ID, event.ID, user.ID, "no", false)
	assert.ErrorIs(t, err, requests.ErrNotOrganizer)

	answered, err := requests.Respond(db, organizer.ID, event.ID, user.ID, "welcome", true)
	require.NoError(t, err)
	assert.True(t, answered.IsHandled)
	require.NotNil(t, answered.IsAccepted)
	assert.True(t, *answered.IsAccepted)
	assert.Equal(t, "welcome", answered.Answer)

	// Re-handling overwrites the earlier decision instead of failing
	overturned, err := requests.Respond(db, organizer.ID, event.ID, user.ID, "actually no", false)
	require.NoError(t, err)
	assert.True(t, overturned.IsHandled)
	require.NotNil(t, overturned.IsAccepted)
	assert.False(t, *overturned.IsAccepted)
	assert.Equal(t, "actually no", overturned.Answer)

	var count int64
	require.NoError(t, db.Model(&models.ParticipationRequest{}).
		Where("event_id = ?", event.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRespondMissingRequest(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	user := createProfile(t, db, "uma")
	event := createEvent(t, db, organizer.ID)

	_, err := requests.Respond(db, organizer.ID, event.ID, user.ID, "", true)
	assert.ErrorIs(t, err, requests.ErrNotFound)
}

func TestOrganizerViews(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	uma := createProfile(t, db, "uma")
	ben := createProfile(t, db, "ben")
	stranger := createProfile(t, db, "sven")
	event := createEvent(t, db, organizer.ID)

	_, err := requests.Join(db, uma.ID, event.ID, "")
	require.NoError(t, err)
	_, err = requests.Join(db, ben.ID, event.ID, "")
	require.NoError(t, err)

	_, err = requests.Unhandled(db, stranger.ID, event.ID)
	assert.ErrorIs(t, err, requests.ErrNotOrganizer)

	unhandled, err := requests.Unhandled(db, organizer.ID, event.ID)
	require.NoError(t, err)
	assert.Len(t, unhandled, 2)

	_, err = requests.Respond(db, organizer.ID, event.ID, uma.ID, "ok", true)
	require.NoError(t, err)

	unhandled, err = requests.Unhandled(db, organizer.ID, event.ID)
	require.NoError(t, err)
	require.Len(t, unhandled, 1)
	assert.Equal(t, ben.ID, unhandled[0].UserID)

	all, err := requests.All(db, organizer.ID, event.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestParticipators(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	uma := createProfile(t, db, "uma")
	ben := createProfile(t, db, "ben")
	event := createEvent(t, db, organizer.ID)

	_, err := requests.Join(db, uma.ID, event.ID, "")
	require.NoError(t, err)
	_, err = requests.Join(db, ben.ID, event.ID, "")
	require.NoError(t, err)

	_, err = requests.Respond(db, organizer.ID, event.ID, uma.ID, "ok", true)
	require.NoError(t, err)
	_, err = requests.Respond(db, organizer.ID, event.ID, ben.ID, "sorry", false)
	require.NoError(t, err)

	participators, err := requests.Participators(db, event.ID)
	require.NoError(t, err)
	require.Len(t, participators, 1)
	assert.Equal(t, uma.ID, participators[0].UserID)
}

func TestMyStatus(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	uma := createProfile(t, db, "uma")
	ben := createProfile(t, db, "ben")
	event := createEvent(t, db, organizer.ID)

	_, err := requests.Join(db, uma.ID, event.ID, "count me in")
	require.NoError(t, err)

	status, err := requests.MyStatus(db, uma.ID, event.ID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "count me in", status.Message)

	// The organizer has no request of their own
	status, err = requests.MyStatus(db, organizer.ID, event.ID)
	require.NoError(t, err)
	assert.Nil(t, status)

	// Neither does someone who never asked
	status, err = requests.MyStatus(db, ben.ID, event.ID)
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestWithdrawIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	organizer := createProfile(t, db, "olga")
	uma := createProfile(t, db, "uma")
	event := createEvent(t, db, organizer.ID)

	// Withdrawing before ever asking is a no-op
	require.NoError(t, requests.Withdraw(db, uma.ID, event.ID))

	_, err := requests.Join(db, uma.ID, event.ID, "")
	require.NoError(t, err)
	require.NoError(t, requests.Withdraw(db, uma.ID, event.ID))

	status, err := requests.MyStatus(db, uma.ID, event.ID)
	require.NoError(t, err)
	assert.Nil(t, status)

	require.NoError(t, requests.Withdraw(db, uma.ID, event.ID))
}
