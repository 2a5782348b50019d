package membership

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const membershipColumns = `id, tenant_id, principal_id, role, status, is_first_member, created_at, updated_at`

const findByPrincipalSQL = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE principal_id = $1
ORDER BY (status = 'active') DESC, updated_at DESC
LIMIT 1`

// FindByPrincipal returns the principal's current membership record.
// When a principal has several rows the active one wins, otherwise the
// most recently updated, so a suspended member resolves as suspended and
// not as a stale historical row.
func (s *PgStore) FindByPrincipal(ctx context.Context, principalID string) (*Membership, error) {
	return s.queryOne(ctx, findByPrincipalSQL, principalID)
}

const findByIDSQL = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE id = $1`

// FindByID returns the membership with the given id.
func (s *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*Membership, error) {
	return s.queryOne(ctx, findByIDSQL, id)
}

const listByTenantSQL = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE tenant_id = $1
ORDER BY created_at`

// ListByTenant returns every membership of a tenant ordered by creation.
// Results are list-shaped and belong in the short-TTL list cache, not in
// the permission cache.
func (s *PgStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]Membership, error) {
	rows, err := s.pool.Query(ctx, listByTenantSQL, tenantID)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []Membership
	for rows.Next() {
		var m Membership
		if err := scanMembership(rows, &m); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return out, nil
}

func (s *PgStore) queryOne(ctx context.Context, sql string, arg any) (*Membership, error) {
	row := s.pool.QueryRow(ctx, sql, arg)
	var m Membership
	if err := scanMembership(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return &m, nil
}

func scanMembership(row pgx.Row, m *Membership) error {
	return row.Scan(&m.ID, &m.TenantID, &m.PrincipalID, &m.Role, &m.Status,
		&m.FirstMember, &m.CreatedAt, &m.UpdatedAt)
}
