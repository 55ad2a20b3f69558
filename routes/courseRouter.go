package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/middlewares"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/utils"
)

type CreateCourseRequest struct {
	Code        string `json:"code" validate:"required,max=32"`
	Title       string `json:"title" validate:"required,max=256"`
	Description string `json:"description" validate:"max=4096"`
}

func CourseRouter(s *mux.Router, api *API) {
	s.HandleFunc("", api.ListCourses).Methods("GET")
	s.HandleFunc("/{id}", api.GetCourse).Methods("GET")
	s.HandleFunc("", api.CreateCourse).Methods("POST")
	s.HandleFunc("/{id}", api.DeleteCourse).Methods("DELETE")
}

func (a *API) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := dbhelper.ListCourses()
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, courses)
}

func (a *API) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r)
	if !ok {
		WriteError(w, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR})
		return
	}
	course, err := dbhelper.GetCourse(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if course == nil {
		http.NotFound(w, r)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

func (a *API) CreateCourse(w http.ResponseWriter, r *http.Request) {
	if err := middlewares.Authorize(r.Context(), 0, models.ROLE_FACULTY); err != nil {
		WriteError(w, err)
		return
	}
	body, err := DecodeValidBody[CreateCourseRequest](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	user, _ := middlewares.IdentityFrom(r.Context())
	course := &models.Course{
		Code:        body.Code,
		Title:       body.Title,
		Description: body.Description,
		CreatedByID: user.ID,
	}
	if err := dbhelper.CreateCourse(course); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

func (a *API) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r)
	if !ok {
		WriteError(w, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR})
		return
	}
	// Courses have no single owner; deleting one is admin-only.
	if err := middlewares.Authorize(r.Context(), 0); err != nil {
		WriteError(w, err)
		return
	}
	if err := dbhelper.DeleteCourse(id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
