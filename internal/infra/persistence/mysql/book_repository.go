package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	dombook "example.com/bookbarn/app/internal/domain/book"
)

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

const bookColumns = `id, title, author, course, edition_condition, image, price, quantity, order_count, seller_name, location, description, category`

func (r *BookRepository) List(ctx context.Context) ([]dombook.Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookColumns+` FROM books`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookRepository) ListByCategory(ctx context.Context, category string) ([]dombook.Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookColumns+` FROM books WHERE category = ?`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookRepository) Create(ctx context.Context, b dombook.Book) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO books (`+bookColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, b.ID, b.Title, b.Author, b.Course, b.Condition, b.Image, b.Price, b.Quantity, b.OrderCount, b.SellerName, b.Location, b.Description, b.Category)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
			return dombook.ErrBookIDExists
		}
		return err
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return dombook.ErrBookNotFound
	}
	return nil
}

func scanBooks(rows *sql.Rows) ([]dombook.Book, error) {
	var books []dombook.Book
	for rows.Next() {
		var b dombook.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Course, &b.Condition, &b.Image, &b.Price, &b.Quantity, &b.OrderCount, &b.SellerName, &b.Location, &b.Description, &b.Category); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
