package controllers_test

import (
	_ "Meeple/docs"
	models "Meeple/models/postgres"
	"Meeple/routes"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

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

	r := gin.New()
	routes.SetupRoutes(r, db, nil)
	return r
}

// doJSON fires a request with an optional token and JSON body and decodes
// the response into out when it is non-nil.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

type account struct {
	ID    uint
	Token string
}

func registerAndLogin(t *testing.T, r *gin.Engine, name string) account {
	t.Helper()
	email := fmt.Sprintf("%s@example.com", name)

	var created struct {
		ID uint `json:"id"`
	}
	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email":            email,
		"password":         "secret123",
		"confirm_password": "secret123",
		"first_name":       name,
	}, &created)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
		ID    uint   `json:"id"`
	}
	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	}, &session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotEmpty(t, session.Token)

	return account{ID: session.ID, Token: session.Token}
}

func TestSwaggerDocServed(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/swagger/doc.json", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Meeple API")
}

func TestRegisterValidation(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email":            "alice@example.com",
		"password":         "secret123",
		"confirm_password": "different",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	registerAndLogin(t, r, "alice")

	// Same email twice
	w = doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email":            "alice@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupServer(t)
	registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnauthenticatedAccess(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScoreFlow(t *testing.T) {
	r := setupServer(t)
	alice := registerAndLogin(t, r, "alice")
	bob := registerAndLogin(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/api/scores/rate/13", alice.Token, gin.H{"score": 3}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/api/scores/rate/13", bob.Token, gin.H{"score": 5}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var avg struct {
		Value float64 `json:"score_value"`
		Count int64   `json:"score_number"`
	}
	w = doJSON(t, r, http.MethodGet, "/api/scores/score/13", alice.Token, nil, &avg)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 4.0, avg.Value, 0.0001)
	assert.Equal(t, int64(2), avg.Count)

	// Unrated game has no content
	w = doJSON(t, r, http.MethodGet, "/api/scores/score/99", alice.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Out-of-range score
	w = doJSON(t, r, http.MethodPost, "/api/scores/rate/13", alice.Token, gin.H{"score": 11}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleting twice is fine either way
	w = doJSON(t, r, http.MethodDelete, "/api/scores/delete/13", alice.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/scores/delete/13", alice.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFriendFlow(t *testing.T) {
	r := setupServer(t)
	alice := registerAndLogin(t, r, "alice")
	bob := registerAndLogin(t, r, "bob")

	path := fmt.Sprintf("/api/friends/add/%d", bob.ID)
	w := doJSON(t, r, http.MethodPost, path, alice.Token, gin.H{"message": "let's play"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate and self requests fail
	w = doJSON(t, r, http.MethodPost, path, alice.Token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/friends/add/%d", alice.ID), alice.Token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var incoming []models.FriendshipStatus
	w = doJSON(t, r, http.MethodGet, "/api/friends/my_requests", bob.Token, nil, &incoming)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, incoming, 1)
	assert.Equal(t, "let's play", incoming[0].Message)

	var accepted models.FriendshipStatus
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/friends/accept/%d", alice.ID), bob.Token, nil, &accepted)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, accepted.IsAccepted)
	assert.Empty(t, accepted.Message)

	var friendsOfAlice []models.Profile
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/profiles/%d/friendlist", alice.ID), alice.Token, nil, &friendsOfAlice)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, friendsOfAlice, 1)
	assert.Equal(t, bob.ID, friendsOfAlice[0].ID)

	var friendsOfBob []models.Profile
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/profiles/%d/friendlist", bob.ID), bob.Token, nil, &friendsOfBob)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, friendsOfBob, 1)
	assert.Equal(t, alice.ID, friendsOfBob[0].ID)
}

func TestParticipationFlow(t *testing.T) {
	r := setupServer(t)
	olga := registerAndLogin(t, r, "olga")
	uma := registerAndLogin(t, r, "uma")

	var event models.Event
	w := doJSON(t, r, http.MethodPost, "/api/events", olga.Token, gin.H{
		"name":    "Catan night",
		"address": "Calle Mayor 1",
		"city":    "Zaragoza",
		"date":    "2026-09-12T00:00:00Z",
		"game":    13,
	}, &event)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, event.IsActive)
	assert.Equal(t, olga.ID, event.OrganizerID)

	// The organizer cannot join their own event
	joinPath := fmt.Sprintf("/api/requests/participate/%d", event.ID)
	w = doJSON(t, r, http.MethodPost, joinPath, olga.Token, gin.H{"message": "mine"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, joinPath, uma.Token, gin.H{"message": "count me in"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Only the organizer may answer
	respondPath := fmt.Sprintf("/api/requests/respond/%d/%d", event.ID, uma.ID)
	w = doJSON(t, r, http.MethodPatch, respondPath, uma.Token, gin.H{"answer": "yes", "is_accepted": true}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var answered models.ParticipationRequest
	w = doJSON(t, r, http.MethodPatch, respondPath, olga.Token, gin.H{"answer": "welcome", "is_accepted": true}, &answered)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, answered.IsHandled)
	require.NotNil(t, answered.IsAccepted)
	assert.True(t, *answered.IsAccepted)

	var participators []models.ParticipationRequest
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/requests/event/%d/participators", event.ID), uma.Token, nil, &participators)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, participators, 1)

	// The organizer's own status view is empty
	statusPath := fmt.Sprintf("/api/requests/event/%d/my_status", event.ID)
	w = doJSON(t, r, http.MethodGet, statusPath, olga.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, statusPath, uma.Token, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Withdraw twice, both 204
	withdrawPath := fmt.Sprintf("/api/requests/delete/%d", event.ID)
	w = doJSON(t, r, http.MethodDelete, withdrawPath, uma.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, withdrawPath, uma.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEventEditAuthorization(t *testing.T) {
	r := setupServer(t)
	olga := registerAndLogin(t, r, "olga")
	sven := registerAndLogin(t, r, "sven")

	var event models.Event
	w := doJSON(t, r, http.MethodPost, "/api/events", olga.Token, gin.H{
		"name":    "Catan night",
		"address": "Calle Mayor 1",
		"date":    "2026-09-12T00:00:00Z",
		"game":    13,
	}, &event)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	editPath := fmt.Sprintf("/api/events/%d/edit", event.ID)
	payload := gin.H{
		"name":    "Hijacked",
		"address": "Elsewhere",
		"date":    "2026-09-12T00:00:00Z",
		"game":    13,
	}

	w = doJSON(t, r, http.MethodPut, editPath, sven.Token, payload, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var updated models.Event
	payload["name"] = "Catan night II"
	w = doJSON(t, r, http.MethodPut, editPath, olga.Token, payload, &updated)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Catan night II", updated.Name)
	assert.Equal(t, olga.ID, updated.OrganizerID)
}
