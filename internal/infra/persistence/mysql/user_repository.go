package mysql

import (
	"context"
	"database/sql"
	"errors"

	domuser "example.com/bookbarn/app/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT email, name, role FROM users WHERE email = ?
    `, email)

	var u domuser.User
	if err := row.Scan(&u.Email, &u.Name, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domuser.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT email, name, role FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domuser.User
	for rows.Next() {
		var u domuser.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, u domuser.User) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO users (email, name, role) VALUES (?, ?, ?)
    `, u.Email, u.Name, u.Role)
	return err
}

func (r *UserRepository) UpdateRole(ctx context.Context, email string, role domuser.Role) error {
	_, err := r.db.ExecContext(ctx, `
        UPDATE users SET role = ? WHERE email = ?
    `, role, email)
	return err
}
