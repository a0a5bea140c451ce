package response

import (
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:    view.ID,
		Email: view.Email,
		Name:  view.Name,
		Role:  view.Role,
	}
}
