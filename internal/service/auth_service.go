package service

import (
	"context"

	"github.com/google/uuid"

	"papi/internal/auth"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/repository"
)

// ProfileUpdate carries the profile fields a user may change. Nil fields are
// left untouched; set fields are merged into both the user record and the
// cached session projection.
type ProfileUpdate struct {
	Name                 *string `json:"name"`
	Phone                *string `json:"phone"`
	Address              *string `json:"address"`
	Pincode              *string `json:"pincode"`
	BusinessName         *string `json:"businessName"`
	OrganicCertification *string `json:"organicCertification"`
}

func (p ProfileUpdate) applyToUser(u *model.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Pincode != nil {
		u.Pincode = *p.Pincode
	}
	if p.BusinessName != nil {
		u.BusinessName = *p.BusinessName
	}
	if p.OrganicCertification != nil {
		u.OrganicCertification = *p.OrganicCertification
	}
}

// AuthService owns the session lifecycle: Anonymous -> Authenticated on login,
// back to Anonymous on logout or lazy expiry detection.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Register(ctx context.Context, user model.User) (*model.Session, error)
	Logout(ctx context.Context, token string)
	GetSession(ctx context.Context, token string) *model.Session
	UpdateProfile(ctx context.Context, token string, updates ProfileUpdate) (*model.User, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	sessions auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Login authenticates by email and password and persists a fresh session.
// Passwords are compared in plain text; this is demo data, not a credential
// system.
func (s *authService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	if user.Password != password {
		return nil, errors.ErrInvalidCredential
	}
	if user.Status != model.StatusActive {
		return nil, errors.ErrAccountBlocked
	}

	public := user.Public()
	token, sessionID, expiresAt, err := s.tokens.GenerateSessionToken(public)
	if err != nil {
		return nil, err
	}

	session := model.Session{
		User:      public,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	s.sessions.Save(ctx, sessionID, session)
	return &session, nil
}

// Register creates the user with a generated id and status forced to active,
// then logs in with the supplied credentials.
func (s *authService) Register(ctx context.Context, user model.User) (*model.Session, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, errors.ErrDuplicateEmail
	}

	user.ID = "user-" + uuid.NewString()
	user.Status = model.StatusActive
	s.userRepo.Create(ctx, user)

	return s.Login(ctx, user.Email, user.Password)
}

// Logout clears the persisted session unconditionally; unknown or mangled
// tokens are ignored so the call stays idempotent.
func (s *authService) Logout(ctx context.Context, token string) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return
	}
	s.sessions.Delete(ctx, claims.ID)
}

// GetSession resolves the token to its persisted session, or nil when the
// token is invalid or the session has expired (in which case the record is
// purged by the store).
func (s *authService) GetSession(ctx context.Context, token string) *model.Session {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Get(ctx, claims.ID)
}

// UpdateProfile merges the updates into the user record and the session
// projection, returning the persisted record.
func (s *authService) UpdateProfile(ctx context.Context, token string, updates ProfileUpdate) (*model.User, error) {
	session := s.GetSession(ctx, token)
	if session == nil {
		return nil, errors.ErrNotAuthenticated
	}

	updated, err := s.userRepo.Update(ctx, session.User.ID, func(u *model.User) {
		updates.applyToUser(u)
	})
	if err != nil {
		return nil, err
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, errors.ErrNotAuthenticated
	}
	session.User = updated.Public()
	s.sessions.Save(ctx, claims.ID, *session)

	return updated, nil
}

// ResetPassword overwrites the stored password with no verification step.
// Demo-only flow; see DESIGN.md.
func (s *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return errors.ErrUserNotFound
	}
	_, err = s.userRepo.Update(ctx, user.ID, func(u *model.User) {
		u.Password = newPassword
	})
	return err
}
