package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/comsvc/users-service/internal/application"
	"github.com/comsvc/users-service/pkg/response"
	"github.com/comsvc/users-service/pkg/validation"
)

const insertFailedMsg = "Failed to insert data into database"

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// formOrQuery reads a parameter from the form body first, then the query
// string, so callers can POST either way.
func formOrQuery(c *gin.Context, key string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return c.Query(key)
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	name, err := validation.Name(formOrQuery(c, "name"))
	if err != nil {
		h.Logger.WithError(err).Error("name validation failed")
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, userapp.ErrInsertFailed) {
			h.Logger.Error(insertFailedMsg)
		} else {
			h.Logger.WithError(err).Error("failed to create user")
		}
		response.Err(c, http.StatusInternalServerError, insertFailedMsg)
		return
	}

	response.User(c, http.StatusOK, u)
}

// ListUsers handles GET /users with page_num (default 1) and page_size
// (default 10). page_num is checked first. No bounds on either value; the
// offset arithmetic is passed to the store as-is.
func (h *UserHandler) ListUsers(c *gin.Context) {
	pageNum, err := validation.PageNum(c.DefaultQuery("page_num", "1"))
	if err != nil {
		h.Logger.WithError(err).WithField("page_num", c.Query("page_num")).Error("failed to parse page_num")
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := validation.PageSize(c.DefaultQuery("page_size", "10"))
	if err != nil {
		h.Logger.WithError(err).WithField("page_size", c.Query("page_size")).Error("failed to parse page_size")
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	limit := pageSize
	offset := (pageNum - 1) * pageSize

	users, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	response.Users(c, http.StatusOK, users)
}

// GetUserByID handles GET /users/:id.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := validation.UserID(c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", c.Param("id")).Error("failed to parse user_id")
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			h.Logger.WithField("user_id", id).Error("User is not found")
			response.Err(c, http.StatusNotFound, "User is not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to get user")
		return
	}

	response.User(c, http.StatusOK, u)
}
