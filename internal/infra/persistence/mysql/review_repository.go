package mysql

import (
	"context"
	"database/sql"

	domreview "example.com/bookbarn/app/internal/domain/review"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) List(ctx context.Context) ([]domreview.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, book_id, email, name, avatar, title, message, rating, created_at
        FROM reviews
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domreview.Review
	for rows.Next() {
		var rev domreview.Review
		if err := rows.Scan(&rev.ID, &rev.BookID, &rev.Email, &rev.Name, &rev.Avatar, &rev.Title, &rev.Message, &rev.Rating, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, rev domreview.Review) (*domreview.Review, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO reviews (book_id, email, name, avatar, title, message, rating, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, rev.BookID, rev.Email, rev.Name, rev.Avatar, rev.Title, rev.Message, rev.Rating, rev.CreatedAt)
	if err != nil {
		return nil, err
	}
	rev.ID, _ = res.LastInsertId()
	return &rev, nil
}
