package sqlite

import "context"

type permissionsRepo struct {
	db dbtx
}

func (r *permissionsRepo) AddPermission(ctx context.Context, clientID, node string) error {
	// INSERT OR IGNORE keeps the relation a set: re-granting is a no-op
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO permission_grants (client_id, node)
		VALUES (?, ?)`, clientID, node)
	return err
}

func (r *permissionsRepo) RemovePermission(ctx context.Context, clientID, node string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM permission_grants
		WHERE client_id = ? AND node = ?`, clientID, node)
	return err
}

func (r *permissionsRepo) RemoveAllPermissions(ctx context.Context, clientID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM permission_grants
		WHERE client_id = ?`, clientID)
	return err
}

func (r *permissionsRepo) ListPermissions(ctx context.Context, clientID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT node FROM permission_grants
		WHERE client_id = ?
		ORDER BY node`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nodes := []string{}
	for rows.Next() {
		var node string
		if err := rows.Scan(&node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, rows.Err()
}
