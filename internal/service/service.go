package service

import (
	"go.uber.org/zap"

	"github.com/DraymeM/tiomi/config"
	"github.com/DraymeM/tiomi/internal/repository"
	"github.com/DraymeM/tiomi/pkg/jwt"
	"github.com/DraymeM/tiomi/pkg/redis"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth   AuthService
	User   UserService
	Tetel  TetelService
	Export ExportService
}

// NewService wires the service aggregate. rdb may be nil; token revocation
// then degrades to a no-op.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:   NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:   NewUserService(repo, logger),
		Tetel:  NewTetelService(repo, logger),
		Export: NewExportService(repo, logger),
	}
}
