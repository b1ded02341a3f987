package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/comsvc/users-service/internal/domain/entity"
	repo "github.com/comsvc/users-service/internal/domain/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInsertFailed = errors.New("failed to insert user")
)

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

// Register stores a new user. The creation instant is taken once, in epoch
// microseconds, and used for both timestamps so they start out equal.
func (s *Service) Register(ctx context.Context, name string) (*entity.User, error) {
	now := time.Now().UnixMicro()
	u := &entity.User{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("failed to insert user")
		}
		if errors.Is(err, repo.ErrNoRowReturned) {
			return nil, ErrInsertFailed
		}
		return nil, err
	}
	return u, nil
}

// List returns one page of users, newest first. limit and offset arrive
// exactly as the handler computed them; no bounds are applied here.
func (s *Service) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	users, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{"limit": limit, "offset": offset}).Error("failed to list users")
		}
		return nil, err
	}
	return users, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Error("failed to get user by id")
		}
		return nil, err
	}
	return u, nil
}
