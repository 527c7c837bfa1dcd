package mysql

import (
	"context"
	"database/sql"

	domcontact "example.com/bookbarn/app/internal/domain/contact"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m domcontact.Message) (*domcontact.Message, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO contact_messages (name, email, message, created_at)
        VALUES (?, ?, ?, ?)
    `, m.Name, m.Email, m.Message, m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.ID, _ = res.LastInsertId()
	return &m, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domcontact.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, email, message, created_at
        FROM contact_messages
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domcontact.Message
	for rows.Next() {
		var m domcontact.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
