package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stonks/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			userName: "Ann",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user already exists",
			userName: "Ann",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(&model.User{Email: "ann@x.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:     "duplicate insert race maps to already exists",
			userName: "Ann",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:     "store failure on existence check",
			userName: "Ann",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, errors.New("connection refused"))
			},
			expectedError: errors.New("check user existence: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Signup(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(&model.User{
					ID:           uuid.New(),
					Name:         "Ann",
					Email:        "ann@x.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ann@x.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(&model.User{
					ID:           uuid.New(),
					Email:        "ann@x.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
