package application_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comsvc/users-service/internal/application"
	"github.com/comsvc/users-service/internal/domain/entity"
	"github.com/comsvc/users-service/internal/domain/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func newService(repo repository.UserRepository) *application.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return application.NewService(repo, logger)
}

func TestRegister_TimestampsEqual(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*entity.User)
			u.ID = 7
		}).
		Return(nil).Once()

	u, err := newService(repo).Register(context.Background(), "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Positive(t, u.CreatedAt)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestRegister_NoRowReturned(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(repository.ErrNoRowReturned).Once()

	_, err := newService(repo).Register(context.Background(), "Jane")
	assert.ErrorIs(t, err, application.ErrInsertFailed)
	repo.AssertExpectations(t)
}

func TestRegister_StorageError(t *testing.T) {
	repo := new(MockUserRepository)
	boom := errors.New("connection reset")
	repo.On("Create", mock.Anything, mock.Anything).Return(boom).Once()

	_, err := newService(repo).Register(context.Background(), "Jane")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, application.ErrInsertFailed)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrNotFound).Once()

	_, err := newService(repo).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
	repo.AssertExpectations(t)
}

func TestGetByID_Found(t *testing.T) {
	repo := new(MockUserRepository)
	want := &entity.User{ID: 3, Name: "Jane", CreatedAt: 1700000000000000, UpdatedAt: 1700000000000000}
	repo.On("GetByID", mock.Anything, int64(3)).Return(want, nil).Once()

	got, err := newService(repo).GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestList_PassesLimitAndOffsetThrough(t *testing.T) {
	repo := new(MockUserRepository)
	// negative values are forwarded untouched; bounds are the store's problem
	repo.On("List", mock.Anything, -2, -4).Return([]entity.User{}, nil).Once()

	users, err := newService(repo).List(context.Background(), -2, -4)
	require.NoError(t, err)
	assert.Empty(t, users)
	repo.AssertExpectations(t)
}
