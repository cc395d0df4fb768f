package dto

import (
	"github.com/savioruz/bookease/internal/domains/user/repository"
	"github.com/savioruz/bookease/pkg/constant"
)

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Joined string `json:"joined,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserProfileResponse struct {
	User UserResponse `json:"user"`
}

func (u UserResponse) FromModel(user repository.User) UserResponse {
	var joined string
	if user.CreatedAt.Valid {
		joined = user.CreatedAt.Time.Format(constant.FullDateFormat)
	}

	return UserResponse{
		ID:     user.ID.String(),
		Name:   user.FullName,
		Email:  user.Email,
		Role:   user.Level,
		Joined: joined,
	}
}
