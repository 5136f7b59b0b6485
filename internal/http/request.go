package http

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Request payloads are validated at the boundary before the services apply
// their own domain checks.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *signupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type programRequest struct {
	Title    string `json:"title"`
	Short    string `json:"short"`
	Long     string `json:"long"`
	Category string `json:"category"`
	Duration string `json:"duration"`
}

func (req *programRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Short, validation.Required),
		validation.Field(&req.Long, validation.Required),
		validation.Field(&req.Category, validation.Length(0, 100)),
		validation.Field(&req.Duration, validation.Length(0, 100)),
	)
}

type bookAppointmentRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Note      string `json:"note"`
}

func (req *bookAppointmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ServiceID, validation.Required),
		validation.Field(&req.Date, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.Note, validation.Length(0, 500)),
	)
}

type reminderRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
}

func (req *reminderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Date("15:04")),
		validation.Field(&req.Type, validation.In("resource", "appointment", "program", "other")),
	)
}

type themeRequest struct {
	DarkMode bool `json:"darkMode"`
}
