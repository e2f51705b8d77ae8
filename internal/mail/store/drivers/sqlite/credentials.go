package sqlite

import (
	"context"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
)

type credentialsRepo struct {
	db dbtx
}

func (r *credentialsRepo) GetCredential(ctx context.Context, clientID string) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT client_id, name, secret_hash, secret_salt, created_at
		FROM credentials
		WHERE client_id = ?`, clientID)

	var c domain.Credential
	if err := row.Scan(&c.ClientID, &c.Name, &c.SecretHash, &c.SecretSalt, &c.CreatedAt); err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return c, nil
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (client_id, name, secret_hash, secret_salt)
		VALUES (?, ?, ?, ?)`,
		c.ClientID, c.Name, c.SecretHash, c.SecretSalt)
	return mapConflict(err)
}

func (r *credentialsRepo) DeleteCredential(ctx context.Context, clientID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE client_id = ?`, clientID)
	return err
}
