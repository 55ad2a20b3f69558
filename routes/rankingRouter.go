package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/armsplatform/apiv1/models"
)

type ContributorResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Role        models.Role `json:"role"`
	UploadCount int         `json:"uploadCount"`
}

type RankingsResponse struct {
	Overall  []ContributorResponse `json:"overall"`
	Faculty  []ContributorResponse `json:"faculty"`
	Students []ContributorResponse `json:"students"`
}

func RankingRouter(s *mux.Router, api *API) {
	s.HandleFunc("/top", api.TopContributors).Methods("GET")
}

// TopContributors mirrors the platform leaderboard: ten overall, five
// faculty, ten students, ordered by upload count.
func (a *API) TopContributors(w http.ResponseWriter, r *http.Request) {
	overall, err := a.Users.TopContributors("", 10)
	if err != nil {
		WriteError(w, err)
		return
	}
	faculty, err := a.Users.TopContributors(models.ROLE_FACULTY, 5)
	if err != nil {
		WriteError(w, err)
		return
	}
	students, err := a.Users.TopContributors(models.ROLE_STUDENT, 10)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, RankingsResponse{
		Overall:  toContributors(overall),
		Faculty:  toContributors(faculty),
		Students: toContributors(students),
	})
}

func toContributors(users []models.User) []ContributorResponse {
	contributors := make([]ContributorResponse, 0, len(users))
	for _, user := range users {
		contributors = append(contributors, ContributorResponse{
			ID:          user.ID,
			Name:        user.Name,
			Role:        user.Role,
			UploadCount: user.UploadCount,
		})
	}
	return contributors
}
