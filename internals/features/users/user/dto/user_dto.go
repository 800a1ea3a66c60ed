// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/features/users/user/model"
)

type LoginDTO struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserPassword string `json:"user_password" validate:"required,min=6"`
}

type UserCreateDTO struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserFullName string `json:"user_full_name" validate:"required,max=100"`
	UserPassword string `json:"user_password" validate:"required,min=6,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=teacher admin"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserFullName  string    `json:"user_full_name"`
	UserRole      string    `json:"user_role"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m model.User) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserFullName:  m.UserFullName,
		UserRole:      m.UserRole,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func ToUserResponses(list []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToUserResponse(m))
	}
	return out
}
