package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"foodfleet/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

func strPtr(s string) *string { return &s }

func sampleOrder() *domain.OrderRequest {
	return &domain.OrderRequest{
		RestaurantID:    1,
		CartItems:       []domain.CartItem{{ItemID: 5, Quantity: 2, Price: 9.99}},
		TotalAmount:     19.98,
		CustomerName:    "Asha Rao",
		DeliveryAddress: "12 MG Road",
		City:            "Pune",
		State:           "MH",
		PinCode:         "411001",
		PaymentMethod:   strPtr("cash"),
	}
}

func TestListRestaurants(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT \\* FROM restaurants").
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "name", "rating"}).
			AddRow(1, "Spice Route", []byte("4.50")).
			AddRow(2, "Dosa Corner", nil))

	restaurants, err := repo.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	assert.Equal(t, "Spice Route", restaurants[0]["name"])
	assert.Equal(t, "4.50", restaurants[0]["rating"])
	assert.Nil(t, restaurants[1]["rating"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMenuItems_Empty(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT \\* FROM menu_items").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "restaurant_id", "price"}))

	items, err := repo.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListMenuItems_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock := setupTestRepo(t)
		mock.ExpectQuery("SELECT \\* FROM menu_items").WillReturnError(errors.New("connection reset"))

		items, err := repo.ListMenuItems(context.Background())
		assert.Error(t, err)
		assert.Nil(t, items)
	})

	t.Run("row error discards partial result", func(t *testing.T) {
		repo, mock := setupTestRepo(t)
		mock.ExpectQuery("SELECT \\* FROM menu_items").
			WillReturnRows(sqlmock.NewRows([]string{"item_id", "restaurant_id"}).
				AddRow(1, 1).
				AddRow(2, 1).
				RowError(1, errors.New("connection reset")))

		items, err := repo.ListMenuItems(context.Background())
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestCreateOrder_Success(t *testing.T) {
	repo, mock := setupTestRepo(t)
	order := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(1, 19.98, "Asha Rao", nil, nil, "12 MG Road", "Pune", "MH", "411001", nil, "cash", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (order_id, menu_item_id, quantity, price_at_order_time) VALUES ($1, $2, $3, $4)")).
		WithArgs(42, 5, 2, 9.99).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	orderID, err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_OptionalFields(t *testing.T) {
	repo, mock := setupTestRepo(t)
	order := sampleOrder()
	phone, promo := "9800000000", "WELCOME10"
	discount, fee, taxes := 2.0, 1.5, 0.99
	order.CustomerPhone = &phone
	order.PromoCodeApplied = &promo
	order.DiscountAmount = &discount
	order.DeliveryFee = &fee
	order.TaxesAmount = &taxes
	order.PaymentMethod = nil

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(1, 19.98, "Asha Rao", "9800000000", nil, "12 MG Road", "Pune", "MH", "411001", nil, nil, "WELCOME10", 2.0, 1.5, 0.99).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	orderID, err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(7), orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_EmptyPaymentMethodStoredAsGiven(t *testing.T) {
	repo, mock := setupTestRepo(t)
	order := sampleOrder()
	order.PaymentMethod = strPtr("")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(1, 19.98, "Asha Rao", nil, nil, "12 MG Road", "Pune", "MH", "411001", nil, "", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(9))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_ItemInsertFailureRollsBack(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	orderID, err := repo.CreateOrder(context.Background(), sampleOrder())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert order items")
	assert.Zero(t, orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_HeaderInsertFailureRollsBack(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("null value in column"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), sampleOrder())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_BeginAndCommitFailures(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		repo, mock := setupTestRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		_, err := repo.CreateOrder(context.Background(), sampleOrder())
		assert.ErrorContains(t, err, "begin transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit", func(t *testing.T) {
		repo, mock := setupTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(42))
		mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		orderID, err := repo.CreateOrder(context.Background(), sampleOrder())
		assert.ErrorContains(t, err, "commit order")
		assert.Zero(t, orderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateOrder_ReleasesConnectionOnFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	mockDB.SetMaxOpenConns(1)
	repo := NewPostgresRepository(mockDB)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(2))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = repo.CreateOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	_, err = repo.CreateOrder(context.Background(), sampleOrder())
	require.Error(t, err)

	// With one connection in the pool, a leak from either failure blocks here.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	orderID, err := repo.CreateOrder(ctx, sampleOrder())
	require.NoError(t, err)
	assert.Equal(t, int64(2), orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemsInsert(t *testing.T) {
	query, args := orderItemsInsert(9, []domain.CartItem{
		{ItemID: 5, Quantity: 2, Price: 9.99},
		{ItemID: 6, Quantity: 1, Price: 120},
	})

	assert.Equal(t,
		"INSERT INTO order_items (order_id, menu_item_id, quantity, price_at_order_time) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)",
		query)
	assert.Equal(t, []any{int64(9), 5, 2, 9.99, int64(9), 6, 1, 120.0}, args)
}

func TestOrderExists(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.OrderExists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInsertHelpInquiry(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("INSERT INTO help_inquiries").
		WithArgs("Ravi", "ravi@example.com", "Late delivery").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.InsertHelpInquiry(context.Background(), &domain.HelpInquiry{
		Name: "Ravi", Email: "ravi@example.com", Message: "Late delivery",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
