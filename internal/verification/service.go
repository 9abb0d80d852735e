package verification

import (
	"context"
	"errors"

	"github.com/herathua/tripplanner-sub000/internal/auth"
)

var (
	ErrAlreadyVerified = errors.New("verification: email is already verified")
	ErrNotSignedIn     = errors.New("verification: no signed-in user")
)

// Status describes an out-of-band code without consuming it.
type Status struct {
	RequestType string
	Email       string
}

// Service drives the email verification flow on top of the identity
// provider: send a verification mail for the current session, then confirm
// the code from the mail's link.
type Service struct {
	client  *auth.Client
	session *auth.Session
}

func NewService(client *auth.Client, session *auth.Session) *Service {
	return &Service{client: client, session: session}
}

// Send mails a verification link to the signed-in user. Sending for an
// already verified address is refused locally to avoid burning provider
// quota.
func (s *Service) Send(ctx context.Context) error {
	u := s.session.User()
	if u == nil {
		return ErrNotSignedIn
	}
	if u.EmailVerified {
		return ErrAlreadyVerified
	}
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}
	return s.client.SendEmailVerification(ctx, token)
}

// Confirm consumes the out-of-band code from the verification link and
// refreshes the session so EmailVerified flips without a re-login.
func (s *Service) Confirm(ctx context.Context, code string) error {
	if err := s.client.ApplyOobCode(ctx, code); err != nil {
		return err
	}
	if s.session.Authenticated() {
		if _, err := s.session.Reload(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Check inspects a code without consuming it, for showing the target email
// on the confirmation page.
func (s *Service) Check(ctx context.Context, code string) (Status, error) {
	requestType, email, err := s.client.CheckOobCode(ctx, code)
	if err != nil {
		return Status{}, err
	}
	return Status{RequestType: requestType, Email: email}, nil
}
