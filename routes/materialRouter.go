package routes

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/middlewares"
	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/utils"
)

type CreateMaterialRequest struct {
	CourseID  uint   `json:"courseId" validate:"required"`
	Title     string `json:"title" validate:"required,max=256"`
	FileName  string `json:"fileName" validate:"required,max=256"`
	SizeBytes int64  `json:"sizeBytes" validate:"gte=0"`
}

func MaterialRouter(s *mux.Router, api *API) {
	s.HandleFunc("", api.ListMaterials).Methods("GET")
	s.HandleFunc("", api.CreateMaterial).Methods("POST")
	s.HandleFunc("/{id}", api.DeleteMaterial).Methods("DELETE")
}

func (a *API) ListMaterials(w http.ResponseWriter, r *http.Request) {
	var courseID uint
	if raw := r.URL.Query().Get("courseId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			WriteError(w, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR})
			return
		}
		courseID = uint(parsed)
	}
	materials, err := dbhelper.ListMaterials(courseID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, materials)
}

// CreateMaterial records upload metadata and credits the uploader's
// contribution count. The storage key is assigned here; the bytes
// themselves are handled by the file storage service.
func (a *API) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		WriteError(w, &utils.AuthenticationError{Message: utils.NOT_AUTHENTICATED_ERROR})
		return
	}
	body, err := DecodeValidBody[CreateMaterialRequest](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	material := &models.Material{
		CourseID:   body.CourseID,
		UploaderID: user.ID,
		Title:      body.Title,
		FileName:   body.FileName,
		StorageKey: uuid.NewString(),
		SizeBytes:  body.SizeBytes,
	}
	if err := dbhelper.CreateMaterial(material); err != nil {
		WriteError(w, err)
		return
	}
	if err := a.Users.IncrementUploadCount(user.ID); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, material)
}

func (a *API) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(r)
	if !ok {
		WriteError(w, &utils.ValidationError{Message: utils.GENERIC_REQUEST_ERROR})
		return
	}
	material, err := dbhelper.GetMaterial(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if material == nil {
		http.NotFound(w, r)
		return
	}
	if err := middlewares.Authorize(r.Context(), material.UploaderID); err != nil {
		WriteError(w, err)
		return
	}
	if err := dbhelper.DeleteMaterial(id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
