package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// CertificationRepository defines persistence for certifications.
type CertificationRepository interface {
	List(ctx context.Context) ([]*model.Certification, error)
	Create(ctx context.Context, cert *model.Certification) error
}

// PgCertificationRepository is the PostgreSQL implementation of CertificationRepository.
type PgCertificationRepository struct {
	pool *pgxpool.Pool
}

// NewPgCertificationRepository creates a PgCertificationRepository backed by the given pool.
func NewPgCertificationRepository(pool *pgxpool.Pool) *PgCertificationRepository {
	return &PgCertificationRepository{pool: pool}
}

var _ CertificationRepository = (*PgCertificationRepository)(nil)

// List returns all certifications ordered by (order_index, issue_date DESC).
func (r *PgCertificationRepository) List(ctx context.Context) ([]*model.Certification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, institution, issue_date, expiration_date,
		        credential_id, credential_url, order_index
		 FROM certification ORDER BY order_index, issue_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*model.Certification
	for rows.Next() {
		var c model.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Institution, &c.IssueDate, &c.ExpirationDate,
			&c.CredentialID, &c.CredentialURL, &c.OrderIndex); err != nil {
			return nil, err
		}
		certs = append(certs, &c)
	}
	return certs, rows.Err()
}

// Create inserts a certification.
func (r *PgCertificationRepository) Create(ctx context.Context, cert *model.Certification) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO certification (name, institution, issue_date, expiration_date,
		                            credential_id, credential_url, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		cert.Name, cert.Institution, cert.IssueDate, cert.ExpirationDate,
		cert.CredentialID, cert.CredentialURL, cert.OrderIndex,
	).Scan(&cert.ID)
	return mapConstraintError(err)
}
