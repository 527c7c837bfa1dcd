package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	dombilling "example.com/bookbarn/app/internal/domain/billing"
)

// mysqlDupEntry is the server error code for a unique-key violation.
const mysqlDupEntry = 1062

type BillingRepository struct {
	db *sql.DB
}

func NewBillingRepository(db *sql.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) Append(ctx context.Context, record dombilling.Record) (_ *dombilling.Record, retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO billings (email, transaction_id, purchased_at)
        VALUES (?, ?, ?)
    `, record.Email, record.TransactionID, record.PurchasedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
			retErr = dombilling.ErrDuplicateTransaction
			return nil, retErr
		}
		retErr = err
		return nil, retErr
	}
	billingID, _ := res.LastInsertId()

	for _, item := range record.Items {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO billing_items (billing_id, book_id, title, author, price, quantity, image)
            VALUES (?, ?, ?, ?, ?, ?, ?)
        `, billingID, item.BookID, item.Title, item.Author, item.Price, item.Quantity, item.Image)
		if err != nil {
			retErr = err
			return nil, retErr
		}
	}

	if err = tx.Commit(); err != nil {
		retErr = err
		return nil, retErr
	}

	record.ID = billingID
	return &record, nil
}

func (r *BillingRepository) ListFor(ctx context.Context, email string) ([]dombilling.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, email, transaction_id, purchased_at
        FROM billings
        WHERE email = ?
        ORDER BY purchased_at DESC, id DESC
    `, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []dombilling.Record
	for rows.Next() {
		var rec dombilling.Record
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.TransactionID, &rec.PurchasedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		items, err := r.listItems(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Items = items
	}
	return records, nil
}

func (r *BillingRepository) listItems(ctx context.Context, billingID int64) ([]dombilling.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT book_id, title, author, price, quantity, image
        FROM billing_items
        WHERE billing_id = ?
    `, billingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []dombilling.Item
	for rows.Next() {
		var item dombilling.Item
		if err := rows.Scan(&item.BookID, &item.Title, &item.Author, &item.Price, &item.Quantity, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
