package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medora-backend/app/controllers"
	"medora-backend/app/dto"
	jwtutil "medora-backend/app/jwt"
	"medora-backend/app/models"
	"medora-backend/app/password"
	"medora-backend/app/repo"
	"medora-backend/app/services"
	"medora-backend/router"
)

func newTestHandler(t *testing.T) (http.Handler, *jwtutil.Signer) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), ExpMin: 60}
	svc := services.NewAuthService(repo.NewUserRepository(gdb), password.NewHasher(bcrypt.MinCost), signer)
	return router.NewRouter(controllers.NewAuthController(svc), controllers.NewHealthController()), signer
}

func doSignup(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doLogin(t *testing.T, h http.Handler, username, pass string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	h, signer := newTestHandler(t)
	rec := doSignup(t, h, `{"username":"alice","password":"pw123","role":"elderly"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp dto.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("access_token should not be empty")
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("token_type: got %q want %q", resp.TokenType, "bearer")
	}
	if resp.Role != "elderly" {
		t.Fatalf("role: got %q want %q", resp.Role, "elderly")
	}

	claims, err := signer.Parse(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != "elderly" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	payload := `{"username":"alice","password":"pw123","role":"elderly"}`
	if rec := doSignup(t, h, payload); rec.Code != http.StatusOK {
		t.Fatalf("first signup: got %d", rec.Code)
	}

	rec := doSignup(t, h, payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second signup: got %d want %d", rec.Code, http.StatusBadRequest)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "username already exists" {
		t.Fatalf("error: got %q", resp.Error)
	}
}

func TestSignup_RejectsMalformedRequests(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{"username":`},
		{"missing password", `{"username":"alice","role":"elderly"}`},
		{"missing username", `{"password":"pw","role":"elderly"}`},
		{"invalid role", `{"username":"alice","password":"pw","role":"admin"}`},
		{"empty role", `{"username":"alice","password":"pw"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := doSignup(t, h, tc.body); rec.Code != http.StatusBadRequest {
				t.Fatalf("got %d want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestSignup_CaregiverWithDanglingLink(t *testing.T) {
	t.Parallel()

	// No referential check on the linked username.
	h, _ := newTestHandler(t)
	rec := doSignup(t, h, `{"username":"carer","password":"pw","role":"caregiver","linked_elderly_username":"ghost"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestToken_Login(t *testing.T) {
	t.Parallel()

	h, signer := newTestHandler(t)
	if rec := doSignup(t, h, `{"username":"alice","password":"pw123","role":"caregiver"}`); rec.Code != http.StatusOK {
		t.Fatalf("signup: got %d", rec.Code)
	}

	rec := doLogin(t, h, "alice", "pw123")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var resp dto.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != "caregiver" {
		t.Fatalf("role: got %q", resp.Role)
	}
	if _, err := signer.Parse(resp.AccessToken); err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
}

func TestToken_InvalidCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	if rec := doSignup(t, h, `{"username":"alice","password":"pw123","role":"elderly"}`); rec.Code != http.StatusOK {
		t.Fatalf("signup: got %d", rec.Code)
	}

	wrongPw := doLogin(t, h, "alice", "wrong")
	unknown := doLogin(t, h, "nobody", "pw123")

	if wrongPw.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("both logins should be 401, got %d and %d", wrongPw.Code, unknown.Code)
	}
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Fatalf("responses must be identical:\n%s\n%s", wrongPw.Body.String(), unknown.Body.String())
	}
}

func TestToken_MissingFields(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	if rec := doLogin(t, h, "", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSignup_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got %d want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d want %d", rec.Code, http.StatusOK)
	}

	var resp dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("status: got %q", resp.Status)
	}
	ts, err := time.Parse(time.RFC3339, resp.Time)
	if err != nil {
		t.Fatalf("time should be RFC3339: %v", err)
	}
	if d := time.Since(ts); d < -time.Minute || d > time.Minute {
		t.Fatalf("time should be close to now, got %v", ts)
	}
}
