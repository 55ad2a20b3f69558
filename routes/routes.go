package routes

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/googleauth"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/throttle"
	"github.com/armsplatform/apiv1/utils"
)

var validate *validator.Validate

// API bundles the collaborators the handlers need.
type API struct {
	Config   utils.Config
	Users    dbhelper.UserDirectory
	Throttle throttle.Limiter
	Google   *googleauth.Verifier
}

func CreateRoutes(r *mux.Router, api *API) {
	validate = validator.New()
	r.HandleFunc("/api/health", Health).Methods("GET")
	AuthRouter(r.PathPrefix("/api/auth").Subrouter(), api)
	CourseRouter(r.PathPrefix("/api/courses").Subrouter(), api)
	MaterialRouter(r.PathPrefix("/api/materials").Subrouter(), api)
	NewsRouter(r.PathPrefix("/api/news").Subrouter(), api)
	RankingRouter(r.PathPrefix("/api/rankings").Subrouter(), api)
}

func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type ErrorResponse struct {
	Error             string `json:"error"`
	RetryAfterMinutes int    `json:"retryAfterMinutes,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is logged and hidden behind a generic 500 body.
func WriteError(w http.ResponseWriter, err error) {
	var validationErr *utils.ValidationError
	var authnErr *utils.AuthenticationError
	var rateErr *utils.RateLimitError
	var authzErr *utils.AuthorizationError
	switch {
	case errors.As(err, &validationErr):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &authnErr):
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: authnErr.Message})
	case errors.As(err, &rateErr):
		WriteJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Error:             rateErr.Message,
			RetryAfterMinutes: rateErr.RetryAfterMinutes,
		})
	case errors.As(err, &authzErr):
		WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: authzErr.Message})
	default:
		log.Println(err)
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: utils.GENERIC_REQUEST_ERROR})
	}
}

// DecodeValidBody decodes a JSON request body and runs struct validation.
func DecodeValidBody[B any](r *http.Request) (B, error) {
	var body B
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR}
	}
	if err := validate.Struct(body); err != nil {
		return body, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR}
	}
	return body, nil
}

// ClientAddr is the throttle-key half identifying the caller.
func ClientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// PathID parses the {id} route variable.
func PathID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

type UserResponse struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
