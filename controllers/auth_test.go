package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"covicenter-backend/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name":            "Asha",
		"email":           "a@x.com",
		"password":        "p",
		"confirmPassword": "p",
	})
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	if body["token"] == "" || body["token"] == nil {
		t.Error("signup response carries no token")
	}
	if body["redirect"] != "/" {
		t.Errorf("redirect = %v, want /", body["redirect"])
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "token=") {
		t.Errorf("no session cookie set: %q", cookie)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "a@x.com").Error; err != nil {
		t.Fatalf("user row missing: %v", err)
	}
	if user.IsAdmin {
		t.Error("signup created an admin account")
	}
	if user.Password == "p" {
		t.Error("password stored in plaintext")
	}

	// Login with the right password
	w = doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "p",
	})
	requireStatus(t, w, http.StatusOK)

	// And with the wrong one
	w = doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, db := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name":            "Asha",
		"email":           "a@x.com",
		"password":        "p",
		"confirmPassword": "q",
	})
	requireStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("%d user rows after rejected signup, want 0", count)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := setupServer(t)

	payload := map[string]string{
		"name":            "Asha",
		"email":           "a@x.com",
		"password":        "p",
		"confirmPassword": "p",
	}
	requireStatus(t, doJSON(t, r, http.MethodPost, "/signup", "", payload), http.StatusCreated)
	requireStatus(t, doJSON(t, r, http.MethodPost, "/signup", "", payload), http.StatusConflict)
}

func TestAdminLoginNeverProvisions(t *testing.T) {
	r, db := setupServer(t)

	// Unknown admin email is rejected outright, no account is created
	w := doJSON(t, r, http.MethodPost, "/admin_login", "", map[string]string{
		"email": "new@x.com", "password": "secret",
	})
	requireStatus(t, w, http.StatusUnauthorized)

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("%d user rows after rejected admin login, want 0", count)
	}
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	r, _ := setupServer(t)

	requireStatus(t, doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name":            "Asha",
		"email":           "a@x.com",
		"password":        "p",
		"confirmPassword": "p",
	}), http.StatusCreated)

	// Correct password, but the account is not an admin
	w := doJSON(t, r, http.MethodPost, "/admin_login", "", map[string]string{
		"email": "a@x.com", "password": "p",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAdminRegisterWithInviteCode(t *testing.T) {
	r, db := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin_signup", "", map[string]string{
		"name":            "Root",
		"email":           "root@x.com",
		"password":        "secret",
		"confirmPassword": "secret",
		"inviteCode":      "invite-1234",
	})
	requireStatus(t, w, http.StatusCreated)

	var admin models.User
	if err := db.First(&admin, "email = ?", "root@x.com").Error; err != nil {
		t.Fatalf("admin row missing: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("admin signup created a non-admin account")
	}

	// Admin login now succeeds
	w = doJSON(t, r, http.MethodPost, "/admin_login", "", map[string]string{
		"email": "root@x.com", "password": "secret",
	})
	requireStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["redirect"] != "/admin_dashboard" {
		t.Errorf("redirect = %v, want /admin_dashboard", body["redirect"])
	}
}

func TestAdminRegisterWrongInviteCode(t *testing.T) {
	r, db := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin_signup", "", map[string]string{
		"name":            "Mallory",
		"email":           "m@x.com",
		"password":        "secret",
		"confirmPassword": "secret",
		"inviteCode":      "guessed",
	})
	requireStatus(t, w, http.StatusForbidden)

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("%d user rows after rejected admin signup, want 0", count)
	}
}

func TestMeRequiresValidSession(t *testing.T) {
	r, db := setupServer(t)
	_, token := createUser(t, db, "a@x.com", false)

	w := doJSON(t, r, http.MethodGet, "/me", token, nil)
	requireStatus(t, w, http.StatusOK)

	requireStatus(t, doJSON(t, r, http.MethodGet, "/me", "", nil), http.StatusUnauthorized)
	requireStatus(t, doJSON(t, r, http.MethodGet, "/me", "not-a-token", nil), http.StatusUnauthorized)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/logout", "", nil)
	requireStatus(t, w, http.StatusOK)
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "token=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("logout did not clear the session cookie: %q", cookie)
	}
}
