package handler

import "github.com/DraymeM/tiomi/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Tetel  *TetelHandler
	Export *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		User:   NewUserHandler(svc.User),
		Tetel:  NewTetelHandler(svc.Tetel),
		Export: NewExportHandler(svc.Export),
	}
}
