package router

import (
	userapp "github.com/comsvc/users-service/internal/application"
	"github.com/comsvc/users-service/internal/container"
	pginfra "github.com/comsvc/users-service/internal/infrastructure/postgres"
	handlers "github.com/comsvc/users-service/internal/interface/http"
	"github.com/comsvc/users-service/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := userapp.NewService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())
	return modules.NewUserModule(handler, container.GetKeys())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
