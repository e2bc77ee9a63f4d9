package scores_test

import (
	models "Meeple/models/postgres"
	"Meeple/services/scores"
	"fmt"
	"testing"

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
	// A pooled in-memory sqlite would hand each connection its own database
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

func TestRateKeepsOneRecord(t *testing.T) {
	db := openTestDB(t)
	user := createProfile(t, db, "alice")

	first, err := scores.Rate(db, user.ID, 42, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Score)

	second, err := scores.Rate(db, user.ID, 42, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, second.Score)

	var count int64
	require.NoError(t, db.Model(&models.UserScore{}).
		Where("user_id = ? AND game_id = ?", user.ID, 42).Count(&count).Error)
	assert.Equal(t, int64(1), count, "rating twice must not create a second row")

	stored, err := scores.ScoreOf(db, user.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 9, stored.Score)
}

func TestRateRejectsOutOfRange(t *testing.T) {
	db := openTestDB(t)
	user := createProfile(t, db, "alice")

	for _, score := range []int{0, -1, 11, 100} {
		_, err := scores.Rate(db, user.ID, 42, score)
		assert.ErrorIs(t, err, scores.ErrScoreOutOfRange, "score %d", score)
	}
}

func TestAverageScore(t *testing.T) {
	db := openTestDB(t)
	alice := createProfile(t, db, "alice")
	bob := createProfile(t, db, "bob")

	avg, err := scores.AverageScore(db, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), avg.Count)

	_, err = scores.Rate(db, alice.ID, 42, 3)
	require.NoError(t, err)
	_, err = scores.Rate(db, bob.ID, 42, 5)
	require.NoError(t, err)

	avg, err = scores.AverageScore(db, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), avg.Count)
	assert.InDelta(t, 4.0, avg.Value, 0.0001)

	// A different game is unaffected
	avg, err = scores.AverageScore(db, 43)
	require.NoError(t, err)
	assert.Equal(t, int64(0), avg.Count)
}

func TestScoreOfAbsentIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	user := createProfile(t, db, "alice")

	record, err := scores.ScoreOf(db, user.ID, 42)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestByGameAndByUser(t *testing.T) {
	db := openTestDB(t)
	alice := createProfile(t, db, "alice")
	bob := createProfile(t, db, "bob")

	_, err := scores.Rate(db, alice.ID, 42, 7)
	require.NoError(t, err)
	_, err = scores.Rate(db, alice.ID, 43, 5)
	require.NoError(t, err)
	_, err = scores.Rate(db, bob.ID, 42, 8)
	require.NoError(t, err)

	byGame, err := scores.ByGame(db, 42)
	require.NoError(t, err)
	assert.Len(t, byGame, 2)

	byUser, err := scores.ByUser(db, alice.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	user := createProfile(t, db, "alice")

	// Deleting a score that never existed is fine
	require.NoError(t, scores.Delete(db, user.ID, 42))

	_, err := scores.Rate(db, user.ID, 42, 6)
	require.NoError(t, err)
	require.NoError(t, scores.Delete(db, user.ID, 42))

	record, err := scores.ScoreOf(db, user.ID, 42)
	require.NoError(t, err)
	assert.Nil(t, record)

	// And deleting again still succeeds
	require.NoError(t, scores.Delete(db, user.ID, 42))
}
