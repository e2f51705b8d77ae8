package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/lif-platforms/mailservice/internal/mail/store"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

var ErrInvalidEmail = errors.New("invalid email address")

type WaitlistService struct {
	Store store.Store
}

// Join records a waitlist signup. Signing up twice is a silent no-op.
func (s *WaitlistService) Join(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	if err := s.Store.Waitlist().AddEmail(ctx, email); err != nil {
		l.Error("failed to record waitlist signup", "error", err)
		return err
	}

	l.Info("waitlist signup recorded", "email", email)
	return nil
}

// List returns every recorded signup.
func (s *WaitlistService) List(ctx context.Context) ([]domain.WaitlistEntry, error) {
	return s.Store.Waitlist().ListEmails(ctx)
}
