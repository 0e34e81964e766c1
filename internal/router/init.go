package router

import (
	"github.com/gearshare/gearshare/internal/application"
	"github.com/gearshare/gearshare/internal/container"
	pginfra "github.com/gearshare/gearshare/internal/infrastructure/postgres"
	handlers "github.com/gearshare/gearshare/internal/interface/http"
	"github.com/gearshare/gearshare/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	gcs := container.GetGCS()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)
	deviceRepo := pginfra.NewDeviceRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, logger, cfg.DefaultImageURL)
	userSvc := application.NewUserService(userRepo, gcs, cfg.GCSBucket, logger)
	postSvc := application.NewPostService(postRepo, gcs, cfg.GCSBucket, logger)
	deviceSvc := application.NewDeviceService(deviceRepo, gcs, cfg.GCSBucket, logger, cfg.DefaultImageURL)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg, container.GetRabbitPub()), jwt))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), jwt))
	r.Add(modules.NewDeviceModule(handlers.NewDeviceHandler(deviceSvc, logger), jwt))
}
