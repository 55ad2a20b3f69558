package routes

import (
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/armsplatform/apiv1/middlewares"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/throttle"
	"github.com/armsplatform/apiv1/utils"
)

type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

type RegisterAttempt struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginAttempt struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginAttempt struct {
	IDToken string `json:"idToken"`
}

func AuthRouter(s *mux.Router, api *API) {
	s.HandleFunc("/register", api.Register).Methods("POST")
	s.HandleFunc("/login", api.Login).Methods("POST")
	s.HandleFunc("/google", api.GoogleLogin).Methods("POST")
	s.HandleFunc("/me", api.Me).Methods("GET")
}

func (a *API) issueToken(w http.ResponseWriter, user *models.User) {
	tokenString, err := utils.CreateJWTToken(
		a.Config.SigningSecret, user.Email, user.ID, user.Role, a.Config.TokenTTL)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: tokenString,
		User:        NewUserResponse(user),
	})
}

// Register creates a local account. Registration never grants a role above
// STUDENT.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	attempt, err := DecodeValidBody[RegisterAttempt](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	email := utils.NormalizeEmail(attempt.Email)
	if !utils.EmailDomainAllowed(email, a.Config.AllowedEmailDomain) {
		WriteError(w, utils.DomainNotAllowedError(a.Config.AllowedEmailDomain))
		return
	}
	exists, err := a.Users.ExistsByEmail(email)
	if err != nil {
		WriteError(w, err)
		return
	}
	if exists {
		WriteError(w, &utils.ValidationError{Message: utils.EMAIL_TAKEN_ERROR})
		return
	}
	if err := utils.ValidateNewPassword(attempt.Password); err != nil {
		WriteError(w, err)
		return
	}
	passwordHash, err := utils.HashPassword(attempt.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	user := &models.User{
		Name:         attempt.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.ROLE_STUDENT,
	}
	if err := a.Users.Save(user); err != nil {
		WriteError(w, err)
		return
	}
	a.issueToken(w, user)
}

// Login verifies credentials behind the per-(client,email) throttle gate.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	attempt, err := DecodeValidBody[LoginAttempt](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	email := utils.NormalizeEmail(attempt.Email)
	key := throttle.Key(ClientAddr(r), email)

	status := a.Throttle.Check(key)
	if !status.Allowed {
		WriteError(w, &utils.RateLimitError{
			Message:           fmt.Sprintf(utils.LOCKED_LOGIN_ERROR, status.RetryAfterMinutes),
			RetryAfterMinutes: status.RetryAfterMinutes,
		})
		return
	}

	user, err := a.Users.FindByEmail(email)
	if err != nil {
		WriteError(w, err)
		return
	}
	// An unknown email counts as a failed attempt, same as a wrong password.
	if user == nil || !utils.VerifyPassword(user.PasswordHash, attempt.Password) {
		a.Throttle.RecordFailure(key)
		WriteError(w, &utils.AuthenticationError{Message: utils.INVALID_CREDENTIALS_ERROR})
		return
	}
	a.Throttle.RecordSuccess(key)
	a.issueToken(w, user)
}

// GoogleLogin exchanges a provider-issued ID token for a local session
// token, creating the account on first sight. Every verification failure
// collapses into one generic 401.
func (a *API) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	attempt, err := DecodeValidBody[GoogleLoginAttempt](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	claims, err := a.Google.Verify(attempt.IDToken)
	if err != nil {
		log.Println(err)
		WriteError(w, &utils.AuthenticationError{Message: utils.GOOGLE_LOGIN_ERROR})
		return
	}
	user, err := a.upsertFederatedUser(claims.Email, claims.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	a.issueToken(w, user)
}

// upsertFederatedUser is the single convergence point of both login paths:
// an existing identity is reused as-is, otherwise a STUDENT account is
// created with an unguessable placeholder password hash.
func (a *API) upsertFederatedUser(email, name string) (*models.User, error) {
	user, err := a.Users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	if name == "" {
		name = email
	}
	passwordHash, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}
	user = &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.ROLE_STUDENT,
	}
	if err := a.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		WriteError(w, &utils.AuthenticationError{Message: utils.NOT_AUTHENTICATED_ERROR})
		return
	}
	WriteJSON(w, http.StatusOK, NewUserResponse(user))
}
