package mysql

import (
	"context"
	"database/sql"
	"errors"

	domcart "example.com/bookbarn/app/internal/domain/cart"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) AddOrUpdate(ctx context.Context, line domcart.Line) (*domcart.Line, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO cart_items (email, book_id, title, author, price, image, count)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
            title = VALUES(title),
            author = VALUES(author),
            price = VALUES(price),
            image = VALUES(image),
            count = VALUES(count)
    `, line.Email, line.BookID, line.Title, line.Author, line.Price, line.Image, line.Count)
	if err != nil {
		return nil, err
	}
	return r.getByBook(ctx, line.Email, line.BookID)
}

func (r *CartRepository) SetCount(ctx context.Context, email string, lineID int64, count int64) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE cart_items SET count = ?
        WHERE id = ? AND email = ?
    `, count, lineID, email)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.getByID(ctx, email, lineID); err != nil {
			return err
		}
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, email string, lineID int64) error {
	res, err := r.db.ExecContext(ctx, `
        DELETE FROM cart_items WHERE id = ? AND email = ?
    `, lineID, email)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcart.ErrLineNotFound
	}
	return nil
}

func (r *CartRepository) ListFor(ctx context.Context, email string) ([]domcart.Line, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, email, book_id, title, author, price, image, count
        FROM cart_items
        WHERE email = ?
    `, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domcart.Line
	for rows.Next() {
		var line domcart.Line
		if err := rows.Scan(&line.ID, &line.Email, &line.BookID, &line.Title, &line.Author, &line.Price, &line.Image, &line.Count); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *CartRepository) ClearFor(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE email = ?`, email)
	return err
}

func (r *CartRepository) getByBook(ctx context.Context, email string, bookID int64) (*domcart.Line, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, email, book_id, title, author, price, image, count
        FROM cart_items
        WHERE email = ? AND book_id = ?
    `, email, bookID)
	return scanLine(row)
}

func (r *CartRepository) getByID(ctx context.Context, email string, lineID int64) (*domcart.Line, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, email, book_id, title, author, price, image, count
        FROM cart_items
        WHERE id = ? AND email = ?
    `, lineID, email)
	return scanLine(row)
}

func scanLine(row *sql.Row) (*domcart.Line, error) {
	var line domcart.Line
	if err := row.Scan(&line.ID, &line.Email, &line.BookID, &line.Title, &line.Author, &line.Price, &line.Image, &line.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcart.ErrLineNotFound
		}
		return nil, err
	}
	return &line, nil
}
