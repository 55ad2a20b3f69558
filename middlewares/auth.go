package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/utils"
)

type contextKey int

const identityKey contextKey = iota

// WithIdentity attaches the authenticated user to the request context.
func WithIdentity(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, identityKey, user)
}

// IdentityFrom recovers the authenticated user, if any. Handlers behind the
// middleware on a non-public route can rely on ok being true.
func IdentityFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(identityKey).(*models.User)
	return user, ok
}

// GetTokenFromAuthorizationHeader extracts the token from a
// "Bearer <token>" header value.
func GetTokenFromAuthorizationHeader(authHeader string) (string, bool) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type publicRoute struct {
	method string
	path   string
}

// Routes that bypass authentication entirely. A pattern matches its exact
// path and any subpath.
var publicRoutes = []publicRoute{
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	{http.MethodPost, "/api/auth/google"},
	{http.MethodGet, "/api/health"},
	{http.MethodGet, "/api/courses"},
	{http.MethodGet, "/api/news"},
	{http.MethodGet, "/api/rankings"},
}

func IsPublicRoute(method, path string) bool {
	for _, route := range publicRoutes {
		if method != route.method {
			continue
		}
		if path == route.path || strings.HasPrefix(path, route.path+"/") {
			return true
		}
	}
	return false
}

// Authenticator resolves a bearer token into a request-scoped identity and
// enforces the public-route allow-list.
type Authenticator struct {
	Secret []byte
	Users  dbhelper.UserDirectory
}

// Middleware authenticates every request. A missing, malformed or expired
// token leaves the request unauthenticated; whether that is an error is
// route policy: public routes pass through, everything else gets a 401.
// On any verification failure no partial identity is left on the context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := a.resolve(r); user != nil {
			r = r.WithContext(WithIdentity(r.Context(), user))
		} else if !IsPublicRoute(r.Method, r.URL.Path) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": utils.NOT_AUTHENTICATED_ERROR})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolve returns the caller's identity, or nil when the request carries no
// valid token. The subject lookup also goes through the directory so tokens
// for since-removed accounts resolve to nothing.
func (a *Authenticator) resolve(r *http.Request) *models.User {
	tokenString, ok := GetTokenFromAuthorizationHeader(r.Header.Get("Authorization"))
	if !ok {
		return nil
	}
	claims, err := utils.VerifyJWTToken(a.Secret, tokenString)
	if err != nil {
		return nil
	}
	user, err := a.Users.FindByEmail(claims.Email)
	if err != nil || user == nil {
		return nil
	}
	return user
}

// Authorize applies the ownership-or-admin rule: the caller must own the
// resource, hold one of the required roles, or be an ADMIN.
func Authorize(ctx context.Context, ownerID uint, required ...models.Role) error {
	user, ok := IdentityFrom(ctx)
	if !ok {
		return &utils.AuthenticationError{Message: utils.NOT_AUTHENTICATED_ERROR}
	}
	if user.ID == ownerID || user.Role == models.ROLE_ADMIN {
		return nil
	}
	for _, role := range required {
		if user.Role == role {
			return nil
		}
	}
	return &utils.AuthorizationError{Message: utils.NOT_AUTHORIZED_ERROR}
}
