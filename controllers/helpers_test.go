package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"covicenter-backend/models"
	"covicenter-backend/routes"
	"covicenter-backend/services"
	"covicenter-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_SIGNUP_CODE", "invite-1234")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Center{}, &models.SlotBooking{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return routes.SetupRouter(db, services.NewNotifyService(db)), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func createUser(t *testing.T, db *gorm.DB, email string, admin bool) (*models.User, string) {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "secret",
		IsAdmin:  admin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		t.Fatalf("token for %s: %v", email, err)
	}
	return &user, token
}

func createCenter(t *testing.T, db *gorm.DB, slots int) *models.Center {
	t.Helper()
	center := models.Center{
		Name:        "District Clinic",
		Address:     "4 Park Rd",
		OpenTime:    "09:00",
		CloseTime:   "17:00",
		SlotsPerDay: slots,
	}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("create center: %v", err)
	}
	return &center
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
