package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	model "github.com/Shubhamagrahari9191/Todolist/internal/models"
	"github.com/Shubhamagrahari9191/Todolist/internal/otp"
	repository "github.com/Shubhamagrahari9191/Todolist/internal/repositories"
)

const (
	OtpPurposeRegister = "register"
	OtpPurposeReset    = "reset"
)

// AuthService serializes every identity-mutating operation: one method per
// action, each re-deriving validity from the stored OTP record. The server
// holds no per-flow state between calls.
type AuthService struct {
	users *repository.UserRepository
	otp   *otp.Issuer
}

func NewAuthService(users *repository.UserRepository, issuer *otp.Issuer) *AuthService {
	return &AuthService{users: users, otp: issuer}
}

// PublicUser is the projection returned to clients. The password never
// leaves the service.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func publicProjection(user *model.User) *PublicUser {
	p := &PublicUser{ID: user.ID, Username: user.Username}
	if user.Email != nil {
		p.Email = *user.Email
	}
	if user.Phone != nil {
		p.Phone = *user.Phone
	}
	return p
}

// SendOtp issues a code for registration or password reset. Registration
// refuses identifiers already bound to an account; reset requires one.
func (s *AuthService) SendOtp(ctx context.Context, otpType, identifier string) error {
	if identifier == "" {
		return apperrors.ErrIdentifierRequired
	}

	existing, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	switch otpType {
	case OtpPurposeRegister:
		if existing != nil {
			return apperrors.ErrUserExists
		}
	case OtpPurposeReset:
		if existing == nil {
			return apperrors.ErrUserNotFound
		}
	default:
		return apperrors.ErrInvalidOtpType
	}

	_, err = s.otp.Issue(ctx, identifier, otpType)
	return err
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	Otp      string
}

// Register verifies the OTP against the email-or-phone identifier (email
// wins when both are present), enforces uniqueness of username, email and
// phone in that order, creates the user and consumes the code.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*PublicUser, error) {
	identifier := input.Email
	if identifier == "" {
		identifier = input.Phone
	}
	if identifier == "" {
		return nil, apperrors.ErrIdentifierRequired
	}

	if err := s.otp.Verify(ctx, identifier, input.Otp); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.Email != "" {
		if taken, err := s.identifierTaken(ctx, input.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.ErrEmailTaken
		}
	}
	if input.Phone != "" {
		if taken, err := s.identifierTaken(ctx, input.Phone); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.ErrPhoneTaken
		}
	}

	user, err := s.users.CreateUser(
		ctx,
		input.Username,
		input.Password,
		optional(input.Email),
		optional(input.Phone),
	)
	if err != nil {
		return nil, err
	}

	if err := s.otp.Consume(ctx, identifier); err != nil {
		return nil, err
	}

	return publicProjection(user), nil
}

func (s *AuthService) identifierTaken(ctx context.Context, identifier string) (bool, error) {
	_, err := s.users.FindByIdentifier(ctx, identifier)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Login is a plaintext exact-match on the credential pair. Misses are not
// distinguished between unknown user and wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*PublicUser, error) {
	user, err := s.users.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	return publicProjection(user), nil
}

// ResetPassword verifies the OTP, overwrites the password of the user the
// identifier resolves to and consumes the code.
func (s *AuthService) ResetPassword(ctx context.Context, identifier, code, password string) error {
	if err := s.otp.Verify(ctx, identifier, code); err != nil {
		return err
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, password); err != nil {
		return err
	}

	return s.otp.Consume(ctx, identifier)
}

// UserByID resolves a user's public projection, used by the report export.
func (s *AuthService) UserByID(ctx context.Context, id string) (*PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return publicProjection(user), nil
}
