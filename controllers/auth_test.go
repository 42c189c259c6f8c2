package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func authRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	ac := NewAuthController(db)
	r.POST("/auth/login", ac.Login)
	r.GET("/auth/me", utils.AuthMiddleware(), ac.Me)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Username: username, Password: password, Role: role, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginStoresOnlyHashedPassword(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "admin", "admin123", "admin")

	var stored models.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Password == "admin123" {
		t.Fatalf("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", stored.Password)
	}
	if !utils.CheckPasswordHash("admin123", stored.Password) {
		t.Fatalf("hash does not verify")
	}
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := authRouter(db)
	seedUser(t, db, "admin", "admin123", "admin")

	w := performRequest(r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected token in response")
	}

	req := performRequestWithAuth(r, http.MethodGet, "/auth/me", "", resp.Token)
	if req.Code != http.StatusOK {
		t.Fatalf("me: expected 200 got %d: %s", req.Code, req.Body.String())
	}
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := authRouter(db)
	seedUser(t, db, "admin", "admin123", "admin")

	w := performRequest(r, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestLoginInactiveUserRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	r := authRouter(db)
	user := seedUser(t, db, "gone", "admin123", "staff")
	db.Model(&user).Update("is_active", false)

	w := performRequest(r, http.MethodPost, "/auth/login", `{"username":"gone","password":"admin123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}
