package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/utils"
)

var testSecret = []byte("test-secret")

func newTestAuthenticator(t *testing.T) (*Authenticator, *models.User) {
	t.Helper()
	users := dbhelper.NewMemoryUserDirectory()
	user := &models.User{Name: "Alice", Email: "alice@allowed.edu", Role: models.ROLE_STUDENT}
	require.NoError(t, users.Save(user))
	return &Authenticator{Secret: testSecret, Users: users}, user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	tokenString, err := utils.CreateJWTToken(testSecret, user.Email, user.ID, user.Role, time.Hour)
	require.NoError(t, err)
	return tokenString
}

// capture wraps the middleware around a handler that records the resolved
// identity, if any.
func capture(a *Authenticator, identity **models.User) http.Handler {
	return a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := IdentityFrom(r.Context()); ok {
			*identity = user
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	a, user := newTestAuthenticator(t)
	var identity *models.User
	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	w := httptest.NewRecorder()

	capture(a, &identity).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, identity)
	require.Equal(t, user.ID, identity.ID)
	require.Equal(t, "alice@allowed.edu", identity.Email)
}

func TestMiddleware_MissingOrBadHeader(t *testing.T) {
	t.Parallel()

	a, user := newTestAuthenticator(t)
	headers := map[string]string{
		"no header":      "",
		"no scheme":      tokenFor(t, user),
		"wrong scheme":   "Basic abc123",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not-a-token",
		"tampered token": "Bearer " + tokenFor(t, user) + "x",
	}
	for name, header := range headers {
		var identity *models.User
		r := httptest.NewRequest("GET", "/api/auth/me", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()

		capture(a, &identity).ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code, name)
		require.Nil(t, identity, name)
		require.Contains(t, w.Body.String(), "error", name)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	a, user := newTestAuthenticator(t)
	tokenString, err := utils.CreateJWTToken(testSecret, user.Email, user.ID, user.Role, -time.Minute)
	require.NoError(t, err)

	var identity *models.User
	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	capture(a, &identity).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, identity)
}

// A token whose subject no longer resolves (account removed after issuance)
// must leave the request unauthenticated.
func TestMiddleware_UnknownSubject(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuthenticator(t)
	ghost := &models.User{Email: "ghost@allowed.edu", Role: models.ROLE_STUDENT}
	ghost.ID = 99

	var identity *models.User
	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+tokenFor(t, ghost))
	w := httptest.NewRecorder()

	capture(a, &identity).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, identity)
}

func TestMiddleware_PublicRoutesBypassAuth(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuthenticator(t)
	requests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
		{"POST", "/api/auth/google"},
		{"GET", "/api/health"},
		{"GET", "/api/courses"},
		{"GET", "/api/courses/7"},
		{"GET", "/api/news"},
		{"GET", "/api/rankings/top"},
	}
	for _, req := range requests {
		var identity *models.User
		r := httptest.NewRequest(req.method, req.path, nil)
		w := httptest.NewRecorder()

		capture(a, &identity).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code, "%s %s", req.method, req.path)
		require.Nil(t, identity)
	}
}

func TestMiddleware_ProtectedVariantsOfPublicPaths(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuthenticator(t)
	requests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/courses"},
		{"DELETE", "/api/courses/7"},
		{"GET", "/api/materials"},
		{"PUT", "/api/news/3"},
		{"GET", "/api/auth/me"},
	}
	for _, req := range requests {
		var identity *models.User
		r := httptest.NewRequest(req.method, req.path, nil)
		w := httptest.NewRecorder()

		capture(a, &identity).ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.method, req.path)
	}
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	student := &models.User{Role: models.ROLE_STUDENT}
	student.ID = 1
	faculty := &models.User{Role: models.ROLE_FACULTY}
	faculty.ID = 2
	admin := &models.User{Role: models.ROLE_ADMIN}
	admin.ID = 3

	ctxFor := func(user *models.User) *http.Request {
		r := httptest.NewRequest("DELETE", "/api/materials/1", nil)
		return r.WithContext(WithIdentity(r.Context(), user))
	}

	// Owner may act on their own resource.
	require.NoError(t, Authorize(ctxFor(student).Context(), 1))
	// Admin is always permitted.
	require.NoError(t, Authorize(ctxFor(admin).Context(), 1))
	// A required role grants access without ownership.
	require.NoError(t, Authorize(ctxFor(faculty).Context(), 1, models.ROLE_FACULTY))

	// Non-owner without a required role is forbidden.
	err := Authorize(ctxFor(student).Context(), 2)
	require.Error(t, err)
	require.IsType(t, &utils.AuthorizationError{}, err)

	// FACULTY does not satisfy an ADMIN-only gate.
	err = Authorize(ctxFor(faculty).Context(), 1)
	require.IsType(t, &utils.AuthorizationError{}, err)

	// No identity on the context at all.
	r := httptest.NewRequest("DELETE", "/api/materials/1", nil)
	err = Authorize(r.Context(), 1)
	require.IsType(t, &utils.AuthenticationError{}, err)
}
