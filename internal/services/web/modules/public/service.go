package public

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/session"
	"github.com/golear/golear/internal/services/web/storage"
)

// minPasswordLength matches the backend password rule.
const minPasswordLength = 6

// AuthGateway abstracts the account endpoints behind domain types.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (golearapi.LoginResult, error)
	// Register creates an account. The result carries a token when the
	// backend signs the new user in right away.
	Register(ctx context.Context, in golearapi.RegisterInput) (golearapi.LoginResult, error)
	// RequestPasswordReset e-mails a reset token to the account owner.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword sets a new password using a mailed token.
	ResetPassword(ctx context.Context, email, newPassword, token string) error
	// ListPeneiras returns the public tryout list.
	ListPeneiras(ctx context.Context) ([]golearapi.Peneira, error)
}

// SessionStarter opens and closes browser sessions bound to a bearer token.
type SessionStarter interface {
	Start(ctx context.Context, token string, remember bool) (storage.Session, error)
	End(ctx context.Context, id string) error
}

type loginInput struct {
	Email    string
	Password string
	Remember bool
}

type registerInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Nome            string
	Posicao         string
	Cidade          string
	Regiao          string
}

type resetInput struct {
	Email           string
	Token           string
	Password        string
	ConfirmPassword string
}

// fieldErrors maps form field names to catalog keys.
type fieldErrors map[string]string

func (f fieldErrors) Error() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

type service struct {
	gateway  AuthGateway
	sessions SessionStarter
}

func newService(gateway AuthGateway, sessions SessionStarter) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if sessions == nil {
		sessions = unavailableSessions{}
	}
	return service{gateway: gateway, sessions: sessions}
}

func (s service) login(ctx context.Context, in loginInput) (storage.Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return storage.Session{}, apperrors.EK(apperrors.KindInvalidInput, "web.auth.error_credentials_required", "email and password are required")
	}
	result, err := s.gateway.Login(ctx, email, in.Password)
	if err != nil {
		if golearapi.IsUnauthorized(err) || apperrors.KindOf(err) == apperrors.KindInvalidInput {
			return storage.Session{}, apperrors.EK(apperrors.KindUnauthorized, "web.auth.error_invalid_credentials", "invalid credentials")
		}
		return storage.Session{}, err
	}
	return s.startSession(ctx, result.Token, in.Remember)
}

// register creates the account. The returned flag reports whether a session
// was opened; the backend may issue no token and require a separate login.
func (s service) register(ctx context.Context, in registerInput) (storage.Session, bool, error) {
	if errs := in.validate(); len(errs) > 0 {
		return storage.Session{}, false, errs
	}
	role, _ := golearapi.ParseRole(in.Role)
	result, err := s.gateway.Register(ctx, golearapi.RegisterInput{
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Role:     role,
		Nome:     strings.TrimSpace(in.Nome),
		Posicao:  strings.TrimSpace(in.Posicao),
		Cidade:   strings.TrimSpace(in.Cidade),
		Regiao:   strings.TrimSpace(in.Regiao),
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindConflict {
			return storage.Session{}, false, fieldErrors{"email": "web.auth.error_email_taken"}
		}
		return storage.Session{}, false, err
	}
	if strings.TrimSpace(result.Token) == "" {
		return storage.Session{}, false, nil
	}
	started, err := s.startSession(ctx, result.Token, false)
	if err != nil {
		return storage.Session{}, false, err
	}
	return started, true, nil
}

func (s service) requestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return fieldErrors{"email": "web.auth.error_email_invalid"}
	}
	return s.gateway.RequestPasswordReset(ctx, email)
}

func (s service) resetPassword(ctx context.Context, in resetInput) error {
	if errs := in.validate(); len(errs) > 0 {
		return errs
	}
	return s.gateway.ResetPassword(ctx, strings.TrimSpace(in.Email), in.Password, strings.TrimSpace(in.Token))
}

func (s service) listPeneiras(ctx context.Context) ([]golearapi.Peneira, error) {
	return s.gateway.ListPeneiras(ctx)
}

func (s service) logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return s.sessions.End(ctx, sessionID)
}

func (s service) startSession(ctx context.Context, token string, remember bool) (storage.Session, error) {
	if strings.TrimSpace(token) == "" {
		return storage.Session{}, apperrors.E(apperrors.KindUnavailable, "backend returned no token")
	}
	started, err := s.sessions.Start(ctx, token, remember)
	if err != nil {
		if errors.Is(err, session.ErrInvalidToken) || errors.Is(err, session.ErrExpired) {
			return storage.Session{}, apperrors.EK(apperrors.KindUnauthorized, "web.auth.error_invalid_token", fmt.Sprintf("start session: %v", err))
		}
		return storage.Session{}, fmt.Errorf("start session: %w", err)
	}
	return started, nil
}

func (in registerInput) validate() fieldErrors {
	errs := fieldErrors{}
	if !validEmail(in.Email) {
		errs["email"] = "web.auth.error_email_invalid"
	}
	if len(in.Password) < minPasswordLength {
		errs["password"] = "web.auth.error_password_short"
	} else if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "web.auth.error_password_mismatch"
	}
	if _, ok := golearapi.ParseRole(in.Role); !ok {
		errs["role"] = "web.auth.error_role_required"
	}
	return errs
}

func (in resetInput) validate() fieldErrors {
	errs := fieldErrors{}
	if !validEmail(in.Email) {
		errs["email"] = "web.auth.error_email_invalid"
	}
	if strings.TrimSpace(in.Token) == "" {
		errs["token"] = "web.recover.error_token_required"
	}
	if len(in.Password) < minPasswordLength {
		errs["novaSenha"] = "web.auth.error_password_short"
	} else if in.Password != in.ConfirmPassword {
		errs["confirmarSenha"] = "web.auth.error_password_mismatch"
	}
	return errs
}

func validEmail(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	addr, err := mail.ParseAddress(raw)
	return err == nil && addr.Address == raw
}

func asFieldErrors(err error) (fieldErrors, bool) {
	var errs fieldErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
