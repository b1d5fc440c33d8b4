package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wavehouse/database/repository"
	"wavehouse/handlers"
	"wavehouse/middleware"
	"wavehouse/models"
	"wavehouse/services/admin"
	"wavehouse/services/booking"
	"wavehouse/services/catalog"
	"wavehouse/services/contact"
	"wavehouse/services/notification"
	"wavehouse/services/storage"
	"wavehouse/utils"
	"wavehouse/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "letmein"

type testServer struct {
	router *gin.Engine
	repos  repository.Repositories
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repository.NewMemoryRepositories()
	notifier := notification.NewLogNotifier(zap.NewNop())

	hash, err := admin.ResolvePasswordHash("", testPassword)
	require.NoError(t, err)
	adminService := admin.NewAdminService(repos, admin.Options{
		PasswordHash: hash,
		SessionTTL:   time.Hour,
		Signer:       utils.NewTokenSigner("test-secret"),
	})
	bookingService := booking.NewBookingService(repos, notifier, nil, nil, 0.5)
	cat, err := catalog.New(storage.LocalAssets{})
	require.NoError(t, err)

	hb := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService),
		Admin:     handlers.NewAdminHandler(adminService),
		Blocked:   handlers.NewBlockedSlotHandler(adminService),
		Contact:   handlers.NewContactHandler(contact.NewContactService(repos.Contacts, notifier)),
		Page:      handlers.NewPageHandler(cat, utils.NewHealthMonitor(nil, nil)),
		AdminAuth: middleware.AdminAuthMiddleware(adminService, func(err error) bool { return err == admin.ErrUnauthorized }),
	}

	tmpl, err := web.Templates()
	require.NoError(t, err)
	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r, hb, []string{"*"})
	return &testServer{router: r, repos: repos}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"password": testPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sess models.AdminSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	require.NotEmpty(t, sess.Token)
	return sess.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body utils.ErrorResponse
	decode(t, w, &body)
	assert.Equal(t, "Incorrect password", body.Error)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/admin-stats", "/api/blocked-slots", "/api/bookings", "/api/admin/clients"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = s.do(t, http.MethodGet, path, "forged", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestTokenAcceptedByStatsAndBlockedSlots(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/api/admin-stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.AdminStats
	decode(t, w, &stats)
	assert.Equal(t, models.AdminStats{}, stats)

	w = s.do(t, http.MethodGet, "/api/blocked-slots", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/api/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/admin-stats", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBlockedSlotLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	for _, tm := range []string{"4:00 PM", "2:00 PM"} {
		w := s.do(t, http.MethodPost, "/api/blocked-slots", token, gin.H{"date": "2025-03-01", "time": tm})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w := s.do(t, http.MethodPost, "/api/blocked-slots", token, gin.H{"date": "2025-03-01", "time": "14:00"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/blocked-slots", token, gin.H{"date": "2025-03-02", "time": "10:00 AM"})
	require.Equal(t, http.StatusCreated, w.Code)

	var grouped map[string][]models.BlockedSlotView
	decode(t, s.do(t, http.MethodGet, "/api/blocked-slots", token, nil), &grouped)
	require.Len(t, grouped["2025-03-01"], 2)
	assert.Equal(t, "2:00 PM", grouped["2025-03-01"][0].Time)
	assert.Equal(t, "4:00 PM", grouped["2025-03-01"][1].Time)

	// Deleting one slot removes it from the next listing.
	first := grouped["2025-03-01"][0].ID
	w = s.do(t, http.MethodPost, "/api/delete-blocked-slot", token, gin.H{"slot_id": first})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPost, "/api/delete-blocked-slot", token, gin.H{"slot_id": first})
	assert.Equal(t, http.StatusNotFound, w.Code)

	grouped = nil
	decode(t, s.do(t, http.MethodGet, "/api/blocked-slots", token, nil), &grouped)
	require.Len(t, grouped["2025-03-01"], 1)
	assert.Equal(t, "4:00 PM", grouped["2025-03-01"][0].Time)

	// Deleting by date removes the whole group.
	w = s.do(t, http.MethodPost, "/api/delete-blocked-slots-by-date", token, gin.H{"date": "2025-03-01"})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		DeletedCount int64 `json:"deleted_count"`
	}
	decode(t, w, &res)
	assert.EqualValues(t, 1, res.DeletedCount)

	grouped = nil
	decode(t, s.do(t, http.MethodGet, "/api/blocked-slots", token, nil), &grouped)
	assert.NotContains(t, grouped, "2025-03-01")
	assert.Contains(t, grouped, "2025-03-02")

	// The REST variant deletes by path id.
	w = s.do(t, http.MethodDelete, "/api/admin/blocked-slot/"+grouped["2025-03-02"][0].ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBulkBlockSkipsExisting(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/api/blocked-slots", token, gin.H{"date": "2025-03-03", "time": "10:00 AM"})
	require.Equal(t, http.StatusCreated, w.Code)

	// 2025-03-03 is a Monday; Monday and Wednesday of that week.
	w = s.do(t, http.MethodPost, "/api/admin/bulk-block", token, gin.H{
		"start_date": "2025-03-03",
		"end_date":   "2025-03-09",
		"days":       []int{1, 3},
		"times":      []string{"10:00 AM", "11:00 AM"},
		"reason":     "Maintenance",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		BlockedCount int `json:"blocked_count"`
	}
	decode(t, w, &res)
	assert.Equal(t, 3, res.BlockedCount)

	w = s.do(t, http.MethodPost, "/api/admin/bulk-block", token, gin.H{
		"start_date": "2025-03-09",
		"end_date":   "2025-03-03",
		"days":       []int{1},
		"times":      []string{"10:00 AM"},
		"reason":     "Maintenance",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errBody utils.ErrorResponse
	decode(t, w, &errBody)
	assert.Contains(t, errBody.Details, "end_date")
}

func TestBulkBlockDefaultsReason(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	// 2025-03-04 is a Tuesday.
	w := s.do(t, http.MethodPost, "/api/admin/bulk-block", token, gin.H{
		"start_date": "2025-03-04",
		"end_date":   "2025-03-04",
		"days":       []int{2},
		"times":      []string{"9:00 AM"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var grouped map[string][]models.BlockedSlotView
	decode(t, s.do(t, http.MethodGet, "/api/blocked-slots", token, nil), &grouped)
	require.Len(t, grouped["2025-03-04"], 1)
	assert.Equal(t, "Blocked by admin", grouped["2025-03-04"][0].Reason)
}

func TestBookingFlowAndStats(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/api/bookings", "", gin.H{
		"service_type": "studio-access",
		"date":         "2025-04-01",
		"time":         "2:00 PM",
		"duration":     4,
		"name":         "Ada",
		"email":        "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Message              string         `json:"message"`
		Booking              models.Booking `json:"booking"`
		RequiresVerification bool           `json:"requires_verification"`
		VerificationMessage  string         `json:"verification_message"`
	}
	decode(t, w, &created)
	assert.Equal(t, "Booking request submitted successfully", created.Message)
	assert.True(t, created.RequiresVerification)
	assert.NotEmpty(t, created.VerificationMessage)

	w = s.do(t, http.MethodPut, "/api/admin/bookings/"+created.Booking.ID, token, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPut, "/api/admin/bookings/"+created.Booking.ID, token, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPut, "/api/admin/bookings/missing", token, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Overlaps the confirmed 2 PM to 6 PM session.
	w = s.do(t, http.MethodPost, "/api/bookings", "", gin.H{
		"service_type": "studio-access",
		"date":         "2025-04-01",
		"time":         "5:00 PM",
		"duration":     4,
		"name":         "Grace",
		"email":        "grace@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var unavailable map[string][]string
	decode(t, s.do(t, http.MethodGet, "/api/availability?date=2025-04-01", "", nil), &unavailable)
	assert.Equal(t, []string{"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM"}, unavailable["2025-04-01"])

	w = s.do(t, http.MethodPost, "/api/engineer-request", "", gin.H{
		"name": "Lin", "email": "lin@example.com", "message": "Need an engineer Friday",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var stats models.AdminStats
	decode(t, s.do(t, http.MethodGet, "/api/admin-stats", token, nil), &stats)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 0, stats.Pending)
	assert.EqualValues(t, 1, stats.Confirmed)

	w = s.do(t, http.MethodDelete, "/api/admin/bookings/"+created.Booking.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodDelete, "/api/admin/bookings/"+created.Booking.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/bookings", "", gin.H{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/bookings", "", gin.H{
		"service_type": "studio-access",
		"date":         "2025-04-01",
		"time":         "2:00 PM",
		"duration":     5,
		"name":         "Ada",
		"email":        "ada@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositDisabledWithoutGateway(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/bookings/anything/deposit", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContactAndAdminMessages(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/api/contact", "", gin.H{"name": "Ada", "email": "ada@example.com", "message": "Hi"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var msgs []models.ContactMessage
	decode(t, s.do(t, http.MethodGet, "/api/admin/contact-messages", token, nil), &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hi", msgs[0].Message)
}

func TestPageShellAndFallback(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/booking/anything"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "WAVE HOUSE")
		assert.Contains(t, w.Body.String(), `id="admin-overlay"`)
	}

	w := s.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/static/admin.js", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServicesAndHealth(t *testing.T) {
	s := newTestServer(t)

	var services []models.StudioService
	decode(t, s.do(t, http.MethodGet, "/api/services", "", nil), &services)
	require.NotEmpty(t, services)
	assert.Equal(t, models.ServiceStudioAccess, services[0].ID)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	decode(t, w, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "wave-house", health.Service)
}
