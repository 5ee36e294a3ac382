package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/livraria/internal/domain/payment"
)

// TestPaymentRepository_CreateAndFind 支付记录基本读写
func TestPaymentRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	orderID := seedOrder(t, db, nil, 4990)

	p := &payment.Payment{
		OrderID:       orderID,
		PaymentDate:   day(2026, 8, 28),
		Amount:        4990,
		PaymentMethod: "pix",
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, orderID, found.OrderID)
	assert.Equal(t, int64(4990), found.Amount)
	assert.Equal(t, "pix", found.PaymentMethod)
	assert.True(t, found.PaymentDate.Equal(day(2026, 8, 28)))
}

// TestPaymentRepository_OrderAlreadyPaid 同一订单的第二笔支付被唯一索引拒绝
func TestPaymentRepository_OrderAlreadyPaid(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	orderID := seedOrder(t, db, nil, 4990)

	first := &payment.Payment{OrderID: orderID, PaymentDate: day(2026, 8, 28), Amount: 4990, PaymentMethod: "pix"}
	require.NoError(t, repo.Create(ctx, first))

	second := &payment.Payment{OrderID: orderID, PaymentDate: day(2026, 8, 29), Amount: 4990, PaymentMethod: "boleto"}
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, payment.ErrOrderAlreadyPaid)

	var count int64
	require.NoError(t, db.Model(&PaymentModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestPaymentRepository_FindByOrderID 按订单查找，无支付时返回(nil, nil)
func TestPaymentRepository_FindByOrderID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	orderID := seedOrder(t, db, nil, 4990)

	found, err := repo.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Nil(t, found)

	p := &payment.Payment{OrderID: orderID, PaymentDate: day(2026, 8, 28), Amount: 4990, PaymentMethod: "pix"}
	require.NoError(t, repo.Create(ctx, p))

	found, err = repo.FindByOrderID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)
}

// TestPaymentRepository_UpdateAndDelete 部分更新与删除走通用CRUD路径
func TestPaymentRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	orderID := seedOrder(t, db, nil, 4990)
	p := &payment.Payment{OrderID: orderID, PaymentDate: day(2026, 8, 28), Amount: 4990, PaymentMethod: "pix"}
	require.NoError(t, repo.Create(ctx, p))

	err := repo.UpdateFields(ctx, p.ID, map[string]interface{}{"payment_method": "cartao"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "cartao", found.PaymentMethod)
	assert.Equal(t, int64(4990), found.Amount)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}
