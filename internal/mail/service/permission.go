package service

import (
	"context"
	"errors"
	"slices"

	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/lif-platforms/mailservice/internal/mail/store"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

type PermissionService struct {
	Store store.Store
}

// Grant adds each node to the credential's granted set. Already-granted
// nodes are no-ops. The whole edit runs in one transaction: a failure
// partway leaves no partial result.
func (s *PermissionService) Grant(ctx context.Context, clientID string, nodes []string) error {
	l := slogx.FromContext(ctx)

	if err := s.checkExists(ctx, clientID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, node := range nodes {
			if err := tx.Permissions().AddPermission(ctx, clientID, node); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Error("failed to grant permissions", "error", err, "client_id", clientID)
		return err
	}

	l.Info("permissions granted", "client_id", clientID, "nodes", nodes)
	return nil
}

// Revoke removes each node from the credential's granted set. Absent
// nodes are no-ops. Runs in one transaction, like Grant.
func (s *PermissionService) Revoke(ctx context.Context, clientID string, nodes []string) error {
	l := slogx.FromContext(ctx)

	if err := s.checkExists(ctx, clientID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, node := range nodes {
			if err := tx.Permissions().RemovePermission(ctx, clientID, node); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Error("failed to revoke permissions", "error", err, "client_id", clientID)
		return err
	}

	l.Info("permissions revoked", "client_id", clientID, "nodes", nodes)
	return nil
}

// List returns the credential and its granted nodes.
func (s *PermissionService) List(ctx context.Context, clientID string) (domain.Credential, []string, error) {
	cred, err := s.Store.Credentials().GetCredential(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Credential{}, nil, ErrCredentialNotFound
		}
		return domain.Credential{}, nil, err
	}

	nodes, err := s.Store.Permissions().ListPermissions(ctx, clientID)
	if err != nil {
		return domain.Credential{}, nil, err
	}
	return cred, nodes, nil
}

// Has reports whether the credential holds the given node.
func (s *PermissionService) Has(ctx context.Context, clientID, node string) (bool, error) {
	nodes, err := s.Store.Permissions().ListPermissions(ctx, clientID)
	if err != nil {
		return false, err
	}
	return slices.Contains(nodes, node), nil
}

func (s *PermissionService) checkExists(ctx context.Context, clientID string) error {
	_, err := s.Store.Credentials().GetCredential(ctx, clientID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCredentialNotFound
	}
	return err
}
