package handler

import "github.com/blogify/blog-api/internal/core/domain"

// messageResponse is the envelope for plain status/message replies and for
// all 4xx/5xx error bodies. The frontend surfaces Message verbatim.
type messageResponse struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

// Required-field presence is checked by the service so the canonical
// "Please provide all fields!" message is preserved; the validator tags
// only enforce lengths on fields that are present.
type signUpRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,min=2,max=28"`
	LastName  string `json:"lastName"  validate:"omitempty,min=2,max=28"`
	Email     string `json:"email"     validate:"omitempty,min=2"`
	Password  string `json:"password"  validate:"omitempty,min=8"`
	Role      string `json:"role"      validate:"omitempty,oneof=user admin moderator"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	Status      int          `json:"status"`
	Message     string       `json:"message"`
	User        *domain.User `json:"user"`
	Role        string       `json:"role"`
	AccessToken string       `json:"accessToken"`
}

type signInResponse struct {
	Status      int          `json:"status"`
	Message     string       `json:"message"`
	User        *domain.User `json:"user"`
	Role        string       `json:"role"`
	AccessToken string       `json:"accessToken"`
}
