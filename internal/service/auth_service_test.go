package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"papi/internal/auth"
	"papi/internal/errors"
	"papi/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) All(ctx context.Context) []model.User {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.User)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
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

func (m *MockUserRepository) Create(ctx context.Context, user model.User) model.User {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return user
	}
	return args.Get(0).(model.User)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, apply func(*model.User)) (*model.User, error) {
	args := m.Called(ctx, id, apply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	user := args.Get(0).(*model.User)
	apply(user)
	return user, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) {
	m.Called(ctx, id)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, session model.Session) bool {
	args := m.Called(ctx, sessionID, session)
	return args.Bool(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) *model.Session {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Session)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) {
	m.Called(ctx, sessionID)
}

func activeBuyer() *model.User {
	return &model.User{
		ID:       "user-1",
		Role:     model.RoleBuyer,
		Email:    "asha@example.com",
		Password: "buyer123",
		Name:     "Asha Verma",
		Status:   model.StatusActive,
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "asha@example.com",
			password: "buyer123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(activeBuyer(), nil)
				mSess.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("model.Session")).Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "whatever",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, errors.ErrNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "asha@example.com",
			password: "nope",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(activeBuyer(), nil)
			},
			expectedError: errors.ErrInvalidCredential,
		},
		{
			name:     "blocked account",
			email:    "asha@example.com",
			password: "buyer123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				blocked := activeBuyer()
				blocked.Status = model.StatusBlocked
				mRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(blocked, nil)
			},
			expectedError: errors.ErrAccountBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			tokens := auth.NewTokenService("test-secret")
			service := NewAuthService(mockRepo, tokens, mockSessions)

			session, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, session)
				assert.NotEmpty(t, session.Token)
				assert.Equal(t, "user-1", session.User.ID)
				assert.Empty(t, session.User.BusinessName)
				assert.WithinDuration(t, time.Now().Add(auth.SessionExpiry), session.ExpiresAt, 5*time.Second)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockSessions := new(MockSessionStore)
		mockRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(activeBuyer(), nil)

		service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"), mockSessions)
		session, err := service.Register(context.Background(), model.User{Email: "asha@example.com"})

		assert.ErrorIs(t, err, errors.ErrDuplicateEmail)
		assert.Nil(t, session)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("successful registration logs in", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockSessions := new(MockSessionStore)

		var created model.User
		// First lookup misses; the post-create login finds the new record.
		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, errors.ErrNotFound).Once()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("model.User")).Run(func(args mock.Arguments) {
			created = args.Get(1).(model.User)
		}).Return(nil)
		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(&created, nil)
		mockSessions.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("model.Session")).Return(true)

		service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"), mockSessions)
		session, err := service.Register(context.Background(), model.User{
			Role:     model.RoleBuyer,
			Email:    "new@example.com",
			Password: "pw123456",
			Name:     "New Buyer",
			Status:   model.StatusBlocked, // must be overridden
		})

		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, model.StatusActive, created.Status)
		assert.Equal(t, created.ID, session.User.ID)
		mockRepo.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})
}

func TestAuthService_Logout(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	t.Run("valid token deletes the session", func(t *testing.T) {
		mockSessions := new(MockSessionStore)
		token, sessionID, _, _ := tokens.GenerateSessionToken(model.SessionUser{ID: "user-1"})
		mockSessions.On("Delete", mock.Anything, sessionID).Return()

		service := NewAuthService(new(MockUserRepository), tokens, mockSessions)
		service.Logout(context.Background(), token)

		mockSessions.AssertExpectations(t)
	})

	t.Run("mangled token is a no-op", func(t *testing.T) {
		mockSessions := new(MockSessionStore)
		service := NewAuthService(new(MockUserRepository), tokens, mockSessions)

		service.Logout(context.Background(), "garbage")

		mockSessions.AssertNotCalled(t, "Delete")
	})
}

func TestAuthService_GetSession(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	token, sessionID, expiresAt, _ := tokens.GenerateSessionToken(model.SessionUser{ID: "user-1"})

	t.Run("live session is returned", func(t *testing.T) {
		mockSessions := new(MockSessionStore)
		mockSessions.On("Get", mock.Anything, sessionID).Return(&model.Session{
			User:      model.SessionUser{ID: "user-1"},
			Token:     token,
			ExpiresAt: expiresAt,
		})

		service := NewAuthService(new(MockUserRepository), tokens, mockSessions)
		session := service.GetSession(context.Background(), token)

		assert.NotNil(t, session)
		assert.Equal(t, "user-1", session.User.ID)
	})

	t.Run("purged session yields nil", func(t *testing.T) {
		mockSessions := new(MockSessionStore)
		mockSessions.On("Get", mock.Anything, sessionID).Return(nil)

		service := NewAuthService(new(MockUserRepository), tokens, mockSessions)
		assert.Nil(t, service.GetSession(context.Background(), token))
	})

	t.Run("invalid token yields nil without a lookup", func(t *testing.T) {
		mockSessions := new(MockSessionStore)
		service := NewAuthService(new(MockUserRepository), tokens, mockSessions)

		assert.Nil(t, service.GetSession(context.Background(), "garbage"))
		mockSessions.AssertNotCalled(t, "Get")
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	user := activeBuyer()
	token, sessionID, expiresAt, _ := tokens.GenerateSessionToken(user.Public())
	session := &model.Session{User: user.Public(), Token: token, ExpiresAt: expiresAt}

	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionStore)
	mockSessions.On("Get", mock.Anything, sessionID).Return(session)
	mockRepo.On("Update", mock.Anything, "user-1", mock.AnythingOfType("func(*model.User)")).Return(user, nil)
	mockSessions.On("Save", mock.Anything, sessionID, mock.AnythingOfType("model.Session")).Return(true)

	service := NewAuthService(mockRepo, tokens, mockSessions)
	newName := "Asha V"
	newPhone := "9123456789"
	updated, err := service.UpdateProfile(context.Background(), token, ProfileUpdate{
		Name:  &newName,
		Phone: &newPhone,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Asha V", updated.Name)
	assert.Equal(t, "9123456789", updated.Phone)
	// The session projection follows the record.
	assert.Equal(t, "Asha V", session.User.Name)
	mockRepo.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, errors.ErrNotFound)

		service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"), new(MockSessionStore))
		err := service.ResetPassword(context.Background(), "nobody@example.com", "newpass123")

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("overwrites the stored password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		user := activeBuyer()
		mockRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)
		mockRepo.On("Update", mock.Anything, "user-1", mock.AnythingOfType("func(*model.User)")).Return(user, nil)

		service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"), new(MockSessionStore))
		err := service.ResetPassword(context.Background(), "asha@example.com", "newpass123")

		assert.NoError(t, err)
		assert.Equal(t, "newpass123", user.Password)
		mockRepo.AssertExpectations(t)
	})
}
