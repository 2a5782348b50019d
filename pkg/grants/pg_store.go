package grants

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is the canonical PostgreSQL-backed Store.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore constructs a PgStore on the provided pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

const loadGrantsSQL = `
SELECT module, can_view, can_create, can_edit, can_delete, can_administer
FROM permission_grants
WHERE membership_id = $1`

// LoadGrants returns every grant row recorded for the membership.
func (s *PgStore) LoadGrants(ctx context.Context, membershipID uuid.UUID) ([]PermissionGrant, error) {
	rows, err := s.pool.Query(ctx, loadGrantsSQL, membershipID)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []PermissionGrant
	for rows.Next() {
		g := PermissionGrant{MembershipID: membershipID}
		if err := rows.Scan(&g.Module, &g.Actions.View, &g.Actions.Create,
			&g.Actions.Edit, &g.Actions.Delete, &g.Actions.Administer); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return out, nil
}

const upsertGrantSQL = `
INSERT INTO permission_grants (membership_id, module, can_view, can_create, can_edit, can_delete, can_administer)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (membership_id, module) DO UPDATE SET
	can_view = EXCLUDED.can_view,
	can_create = EXCLUDED.can_create,
	can_edit = EXCLUDED.can_edit,
	can_delete = EXCLUDED.can_delete,
	can_administer = EXCLUDED.can_administer`

// SaveGrant records or replaces the explicit grant for one module.
// Used by membership-creation code to seed role defaults; callers are
// responsible for invalidating the permission cache afterwards.
func (s *PgStore) SaveGrant(ctx context.Context, g PermissionGrant) error {
	if !g.Module.IsValid() {
		return ErrInvalidModule
	}
	_, err := s.pool.Exec(ctx, upsertGrantSQL, g.MembershipID, g.Module,
		g.Actions.View, g.Actions.Create, g.Actions.Edit, g.Actions.Delete, g.Actions.Administer)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

const deleteGrantsSQL = `DELETE FROM permission_grants WHERE membership_id = $1`

// DeleteGrants removes every grant owned by the membership. Called when
// the owning membership is destroyed.
func (s *PgStore) DeleteGrants(ctx context.Context, membershipID uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, deleteGrantsSQL, membershipID); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
