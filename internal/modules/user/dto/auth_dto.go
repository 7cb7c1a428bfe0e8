package user

import "anoa.com/skillswap/internal/entity"

type RegisterInput struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8,max=72"`
	Location string   `json:"location" binding:"max=100"`
	Skills   []string `json:"skillsOffered" binding:"omitempty,max=20,dive,min=1,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Profile *entity.Profile `json:"profile"`
}
