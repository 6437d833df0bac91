package router

import (
	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/internal/container"
	handlers "github.com/aspyra/jobboard-api/internal/interface/http"
	"github.com/aspyra/jobboard-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	repos := container.GetRepositories()
	jwt := container.GetJWT()
	rdb := container.GetRedis()

	authSvc := app.NewAuthService(repos.Users, jwt, container.GetHasher(), logger)
	jobSvc := app.NewJobService(repos.Jobs, logger)
	appSvc := app.NewApplicationService(repos.Applications, repos.Jobs, container.GetEvents(), container.GetResumes(), logger)
	companySvc := app.NewCompanyService(repos.Companies, logger)
	userSvc := app.NewUserService(repos.Users, container.GetHasher(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), rdb, cfg.AuthRateLimit))
	r.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger)))
	r.Add(modules.NewApplicationModule(handlers.NewApplicationHandler(appSvc, jwt, logger), rdb))
	r.Add(modules.NewCompanyModule(handlers.NewCompanyHandler(companySvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
