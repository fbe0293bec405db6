package postgres

import (
	"context"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

func (s *Storage) CreateUser(ctx context.Context, req *domain.RegisterRequest, passwordHash string) (*domain.User, error) {
	const query = `
        INSERT INTO users (netid, email, password_hash, year)
        VALUES ($1, $2, $3, $4)
        RETURNING id, netid, email, year, is_admin, created_at;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query,
		req.NetID, req.Email, passwordHash, req.Year,
	).Scan(
		&user.ID, &user.NetID, &user.Email, &user.Year, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Storage) GetUserByNetID(ctx context.Context, netid string) (*domain.User, error) {
	const query = `
        SELECT id, netid, email, password_hash, year, is_admin, created_at
        FROM users WHERE netid = $1;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, netid).Scan(
		&user.ID, &user.NetID, &user.Email, &user.PasswordHash,
		&user.Year, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	const query = `
        SELECT id, netid, email, year, is_admin, created_at
        FROM users WHERE id = $1;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.NetID, &user.Email, &user.Year, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}
