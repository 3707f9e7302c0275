package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"foodfleet/internal/domain"
)

// ConnectionSource is the bounded connection pool. Conn checks out an exclusive
// connection; closing it returns the connection to the pool. *sql.DB satisfies it.
type ConnectionSource interface {
	Conn(ctx context.Context) (*sql.Conn, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type PostgresRepository struct {
	DB ConnectionSource
}

func NewPostgresRepository(db ConnectionSource) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT * FROM restaurants ORDER BY restaurant_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords[domain.Restaurant](rows)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT * FROM menu_items ORDER BY item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords[domain.MenuItem](rows)
}

// scanRecords reads every row into a column-name keyed map. Any scan error
// aborts the read so callers never see a partial result.
func scanRecords[T ~map[string]any](rows *sql.Rows) ([]T, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]T, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		record := make(T, len(columns))
		for i, column := range columns {
			if raw, ok := values[i].([]byte); ok {
				record[column] = string(raw)
				continue
			}
			record[column] = values[i]
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateOrder writes the order header and all of its items on one pooled
// connection inside a single transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.OrderRequest) (int64, error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var orderID int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			restaurant_id, total_amount, customer_name, customer_phone, customer_email,
			delivery_address, city, state, pin_code, delivery_instructions,
			payment_method, promo_code_applied, discount_amount, delivery_fee, taxes_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING order_id
	`,
		order.RestaurantID, order.TotalAmount, order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.DeliveryAddress, order.City, order.State, order.PinCode, order.DeliveryInstructions,
		order.PaymentMethod, order.PromoCodeApplied, order.DiscountAmount, order.DeliveryFee, order.TaxesAmount,
	).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	if len(order.CartItems) > 0 {
		query, args := orderItemsInsert(orderID, order.CartItems)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert order items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit order: %w", err)
	}
	return orderID, nil
}

// orderItemsInsert builds one multi-row INSERT for every cart line.
func orderItemsInsert(orderID int64, items []domain.CartItem) (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO order_items (order_id, menu_item_id, quantity, price_at_order_time) VALUES ")

	args := make([]any, 0, len(items)*4)
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, orderID, item.ItemID, item.Quantity, item.Price)
	}
	return b.String(), args
}

func (r *PostgresRepository) OrderExists(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = $1)", orderID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertHelpInquiry(ctx context.Context, inquiry *domain.HelpInquiry) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO help_inquiries (customer_name, customer_email, message) VALUES ($1, $2, $3)",
		inquiry.Name, inquiry.Email, inquiry.Message)
	return err
}

