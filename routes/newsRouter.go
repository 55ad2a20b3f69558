package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/middlewares"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/utils"
)

type NewsRequest struct {
	Title string `json:"title" validate:"required,max=256"`
	Body  string `json:"body" validate:"required"`
}

func NewsRouter(s *mux.Router, api *API) {
	s.HandleFunc("", api.ListNews).Methods("GET")
	s.HandleFunc("", api.CreateNews).Methods("POST")
	s.HandleFunc("/{id}", api.UpdateNews).Methods("PUT")
	s.HandleFunc("/{id}", api.DeleteNews).Methods("DELETE")
}

func (a *API) ListNews(w http.ResponseWriter, r *http.Request) {
	news, err := dbhelper.ListNews()
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, news)
}

func (a *API) CreateNews(w http.ResponseWriter, r *http.Request) {
	if err := middlewares.Authorize(r.Context(), 0, models.ROLE_FACULTY); err != nil {
		WriteError(w, err)
		return
	}
	body, err := DecodeValidBody[NewsRequest](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	user, _ := middlewares.IdentityFrom(r.Context())
	item := &models.News{
		AuthorID: user.ID,
		Title:    body.Title,
		Body:     body.Body,
	}
	if err := dbhelper.CreateNews(item); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (a *API) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r)
	if !ok {
		WriteError(w, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR})
		return
	}
	item, err := dbhelper.GetNews(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}
	if err := middlewares.Authorize(r.Context(), item.AuthorID); err != nil {
		WriteError(w, err)
		return
	}
	body, err := DecodeValidBody[NewsRequest](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	item.Title = body.Title
	item.Body = body.Body
	if err := dbhelper.UpdateNews(item); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (a *API) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r)
	if !ok {
		WriteError(w, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR})
		return
	}
	item, err := dbhelper.GetNews(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if item == nil {
		http.NotFound(w, r)
		return
	}
	if err := middlewares.Authorize(r.Context(), item.AuthorID); err != nil {
		WriteError(w, err)
		return
	}
	if err := dbhelper.DeleteNews(id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
