package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/comsvc/users-service/internal/interface/http"
	"github.com/comsvc/users-service/internal/interface/middleware"
	"github.com/comsvc/users-service/pkg/helpers"
)

// UserModule wires the user HTTP handlers behind the Com-X-Key check.
// POST /users, GET /users, GET /users/:id — all guarded.
type UserModule struct {
	Handler *handlers.UserHandler
	Keys    *helpers.KeyValidator
}

func NewUserModule(h *handlers.UserHandler, keys *helpers.KeyValidator) *UserModule {
	return &UserModule{Handler: h, Keys: keys}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	guarded := rg.Group("/")
	guarded.Use(middleware.ComKey(m.Keys))
	{
		guarded.POST("/users", m.Handler.CreateUser)
		guarded.GET("/users", m.Handler.ListUsers)
		guarded.GET("/users/:id", m.Handler.GetUserByID)
	}
}
