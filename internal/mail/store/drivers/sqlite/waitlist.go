package sqlite

import (
	"context"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
)

type waitlistRepo struct {
	db dbtx
}

func (r *waitlistRepo) AddEmail(ctx context.Context, email string) error {
	// Duplicate signups are tolerated silently
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO ringer_waitlist (email)
		VALUES (?)`, email)
	return err
}

func (r *waitlistRepo) ListEmails(ctx context.Context) ([]domain.WaitlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT email, created_at FROM ringer_waitlist
		ORDER BY created_at, email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.WaitlistEntry{}
	for rows.Next() {
		var e domain.WaitlistEntry
		if err := rows.Scan(&e.Email, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
