package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/pkg/push"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Business{}, &model.Category{}, &model.Event{}, &model.Promotion{},
		&model.Ticket{}, &model.Review{}, &model.Message{}, &model.Notification{},
		&model.User{}, &model.UserProfile{},
	))
	return db
}

// newTestServer mounts every resource group the way the server entrypoint
// does, with the push gateway pointed at the given URL.
func newTestServer(t *testing.T, pushURL string) *echo.Echo {
	t.Helper()
	db := testDB(t)
	pusher := push.NewClient(pushURL, "test-key", 2*time.Second)

	e := echo.New()
	api := e.Group("/api")
	NewBusinessHandler(db).Register(api.Group("/businesses"))
	NewCategoryHandler(db).Register(api.Group("/categories"))
	NewEventHandler(db).Register(api.Group("/events"))
	NewPromotionHandler(db).Register(api.Group("/promotions"))
	NewTicketHandler(db).Register(api.Group("/tickets"))
	NewReviewHandler(db).Register(api.Group("/reviews"))
	NewMessageHandler(db).Register(api.Group("/messages"))
	NewNotificationHandler(db, pusher).Register(api.Group("/notifications"))
	NewUserHandler(db).Register(api.Group("/users"))
	NewUserProfileHandler(db).Register(api.Group("/user-profiles"))
	e.GET("/health", Health)
	return e
}

// okGateway is a push gateway that accepts everything.
func okGateway(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"success":1}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)
	rec := doJSON(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestEventLifecycle(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	body := `{
		"title": "Summer Concert",
		"description": "Live music downtown",
		"date": "2026-10-01T20:00:00Z",
		"location": "Main Square",
		"categories": ["music"],
		"organizer_id": "org-1"
	}`
	rec := doJSON(e, http.MethodPost, "/api/events", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, model.EventStatusUpcoming, created.Status)

	rec = doJSON(e, http.MethodGet, "/api/events/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Partial update: only the title changes, everything else survives.
	rec = doJSON(e, http.MethodPut, "/api/events/"+created.ID, `{"title":"Autumn Concert"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Autumn Concert", updated.Title)
	assert.Equal(t, "Live music downtown", updated.Description)
	assert.Equal(t, "org-1", updated.OrganizerID)

	// An update that breaks the date window is rejected.
	rec = doJSON(e, http.MethodPut, "/api/events/"+created.ID, `{"end_date":"2026-09-30T20:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/events/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/events/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventCreateRejectsMissingTitle(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)
	rec := doJSON(e, http.MethodPost, "/api/events", `{"description":"d","location":"l","organizer_id":"o","date":"2026-10-01T20:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventListByCategoryRejectsUnknownCategory(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)
	rec := doJSON(e, http.MethodGet, "/api/events/category/circus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserRegistrationAndDuplicateEmail(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	body := `{"email":"maria@example.com","password":"s3cret-enough","full_name":"Maria Silva"}`
	rec := doJSON(e, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The password hash never appears in responses.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "s3cret-enough")

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, model.RoleUser, created.Role)
	assert.True(t, created.IsActive)

	// Same email again conflicts.
	rec = doJSON(e, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Lookup by email.
	rec = doJSON(e, http.MethodGet, "/api/users/email/maria@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMessageReactions(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	rec := doJSON(e, http.MethodPost, "/api/messages",
		`{"sender_id":"u1","receiver_id":"u2","message_type":"user_to_user","content":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var msg model.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))

	rec = doJSON(e, http.MethodPost, "/api/messages/"+msg.ID+"/reactions",
		`{"emoji":"🔥","user_id":"u2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(e, http.MethodPost, "/api/messages/"+msg.ID+"/reactions",
		`{"emoji":"❤️","user_id":"u1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var withReactions model.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withReactions))
	require.Len(t, withReactions.Reactions, 2)

	// Unknown emoji is rejected.
	rec = doJSON(e, http.MethodPost, "/api/messages/"+msg.ID+"/reactions",
		`{"emoji":"🦄","user_id":"u2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Removal is keyed on (user, emoji) and leaves the other reaction alone.
	rec = doJSON(e, http.MethodDelete,
		"/api/messages/"+msg.ID+"/reactions?user_id=u2&emoji=🔥", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var afterRemove model.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &afterRemove))
	require.Len(t, afterRemove.Reactions, 1)
	assert.Equal(t, "u1", afterRemove.Reactions[0].UserID)
}

func TestNotificationPersistsEvenWhenGatewayFails(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer gateway.Close()
	e := newTestServer(t, gateway.URL)

	rec := doJSON(e, http.MethodPost, "/api/notifications",
		`{"title":"Festival opens","message":"Gates at noon","type":"general","target":{"all_users":true}}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())

	// The insert happened before the gateway call, so the document is listable.
	rec = doJSON(e, http.MethodGet, "/api/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []model.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "Festival opens", notifications[0].Title)
}

func TestNotificationDelivery(t *testing.T) {
	var delivered int
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered++
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()
	e := newTestServer(t, gateway.URL)

	rec := doJSON(e, http.MethodPost, "/api/notifications",
		`{"title":"Festival opens","message":"Gates at noon","type":"general","target":{"all_users":true}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, delivered)

	var created model.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodPut, "/api/notifications/"+created.ID, `{"title":"Doors open"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, delivered)
}

func TestUserProfileSubResources(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	rec := doJSON(e, http.MethodPost, "/api/user-profiles", `{"user_id":"u1","bio":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var profile model.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))

	// One profile per user.
	rec = doJSON(e, http.MethodPost, "/api/user-profiles", `{"user_id":"u1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Emoji ratings accumulate; unknown kinds are rejected.
	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/emoji", `{"emoji":"fire"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/emoji", `{"emoji":"fire"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var rated model.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rated))
	assert.Equal(t, 2, rated.EmojiRatings.Fire)

	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/emoji", `{"emoji":"eggplant"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Blocked users cannot comment.
	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/block", `{"user_id":"u2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/comments",
		`{"commenter_id":"u2","comment":"nice profile"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unblocking lets the comment through, stored unapproved.
	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/unblock", `{"user_id":"u2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/user-profiles/"+profile.ID+"/comments",
		`{"commenter_id":"u2","comment":"nice profile"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var commented model.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &commented))
	require.Len(t, commented.Comments, 1)
	assert.False(t, commented.Comments[0].Approved)

	// Profile is reachable through its owning user.
	rec = doJSON(e, http.MethodGet, "/api/user-profiles/user/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBusinessListFilters(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	mk := func(name, status string, categories string) {
		body := fmt.Sprintf(`{"name":%q,"email":"%s@example.com","status":%q,"categories":[%s]}`,
			name, name, status, categories)
		rec := doJSON(e, http.MethodPost, "/api/businesses", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	mk("cantina", "active", `"food"`)
	mk("boutique", "active", `"retail"`)
	mk("closed-bar", "inactive", `"food"`)

	rec := doJSON(e, http.MethodGet, "/api/businesses/category/food", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var byCategory []model.Business
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byCategory))
	assert.Len(t, byCategory, 2)

	rec = doJSON(e, http.MethodGet, "/api/businesses/active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var active []model.Business
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	assert.Len(t, active, 2)
}

func TestTicketListByEvent(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	mk := func(eventID string) {
		body := fmt.Sprintf(`{"event_id":%q,"type":"VIP","price":"150","quantity":10}`, eventID)
		rec := doJSON(e, http.MethodPost, "/api/tickets", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	mk("evt-1")
	mk("evt-1")
	mk("evt-2")

	rec := doJSON(e, http.MethodGet, "/api/tickets/event/evt-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tickets []model.Ticket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	assert.Len(t, tickets, 2)
}

func TestReviewListByTarget(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	mk := func(targetID, targetType string) {
		body := fmt.Sprintf(`{"user_id":"u1","target_id":%q,"target_type":%q,"comment":"great"}`,
			targetID, targetType)
		rec := doJSON(e, http.MethodPost, "/api/reviews", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	mk("biz-1", "business")
	mk("biz-1", "business")
	mk("evt-1", "event")

	rec := doJSON(e, http.MethodGet, "/api/reviews/target/biz-1/business", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []model.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 2)
}

func TestPaginationDefaults(t *testing.T) {
	e := newTestServer(t, okGateway(t).URL)

	for i := 0; i < 12; i++ {
		body := fmt.Sprintf(`{"name":"biz-%d","email":"biz-%d@example.com"}`, i, i)
		rec := doJSON(e, http.MethodPost, "/api/businesses", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// Default window is 10.
	rec := doJSON(e, http.MethodGet, "/api/businesses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page []model.Business
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page, 10)

	rec = doJSON(e, http.MethodGet, "/api/businesses?skip=10&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rest []model.Business
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rest))
	assert.Len(t, rest, 2)
}
