package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"order-api/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	firstID := uuid.NewString()
	secondID := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(firstID, "Keyboard").
			AddRow(secondID, "Monitor"))

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, model.Product{ID: firstID, Name: "Keyboard"}, products[0])
	assert.Equal(t, model.Product{ID: secondID, Name: "Monitor"}, products[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProductsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	// An empty table still yields a non-nil slice so the HTTP layer renders []
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProductsQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product"`)).
		WillReturnError(errors.New("connection refused"))

	products, err := svc.ListProducts(context.Background())
	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to fetch products")
}
