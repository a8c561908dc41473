// Package models defines the wire-level types exchanged by the service
// and the process-wide application metadata.
package models

// Application metadata served on the root endpoint. Fixed for the
// lifetime of the process.
const (
	AppName    = "vtix-ng"
	AppVersion = "0.1.0"
)

// Meta is the response body of `GET /`.
type Meta struct {
	App     string   `json:"app"`
	Version string   `json:"version"`
	Author  []string `json:"author"`
}

// NewMeta returns the metadata literal served on the root endpoint.
func NewMeta() Meta {
	return Meta{
		App:     AppName,
		Version: AppVersion,
		Author:  []string{"yemaster", "XeF2"},
	}
}

// UserResponse is the response body of `GET /users/{user_id}`.
type UserResponse struct {
	UserID int64 `json:"user_id"`
}

// APIError is the shared error body shape of the users routes.
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// RegisterRequest is the body the registration probe posts to
// `/auth/register`. The receiving service is an external collaborator;
// nothing in this repository serves the endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
