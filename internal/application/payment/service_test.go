package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/livraria/internal/domain/payment"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// fakeOrderCache 记录失效的订单ID
type fakeOrderCache struct {
	invalidated []uint
}

func (c *fakeOrderCache) Delete(_ context.Context, orderID uint) error {
	c.invalidated = append(c.invalidated, orderID)
	return nil
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *fakeOrderCache) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, mysql.AutoMigrate(db))

	cache := &fakeOrderCache{}
	svc := NewService(
		mysql.NewPaymentRepository(db),
		mysql.NewOrderRepository(db),
		mysql.NewTxManager(db),
		cache,
		zap.NewNop(),
	)
	return svc, db, cache
}

func seedOrder(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	m := &mysql.OrderModel{
		OrderDate:  day(2026, 8, 28),
		Status:     "pendente",
		TotalValue: 4990,
	}
	require.NoError(t, db.Create(m).Error)
	return m.ID
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestService_CreateAndGetByOrder(t *testing.T) {
	svc, db, cache := newTestService(t)
	ctx := context.Background()

	orderID := seedOrder(t, db)

	p, err := svc.Create(ctx, CreateInput{
		OrderID:       orderID,
		PaymentDate:   day(2026, 8, 28),
		Amount:        4990,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	// 支付写入后失效订单投影缓存
	assert.Equal(t, []uint{orderID}, cache.invalidated)

	found, err := svc.GetByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
}

func TestService_CreateOrderNotFound(t *testing.T) {
	svc, _, cache := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{
		OrderID:       999,
		PaymentDate:   day(2026, 8, 28),
		Amount:        4990,
		PaymentMethod: "pix",
	})
	require.Error(t, err)

	// 订单不存在是引用错误（400），不是支付自身的404
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeInvalidReference, appErr.Code)
	assert.Empty(t, cache.invalidated)
}

func TestService_CreateSecondPaymentRejected(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	orderID := seedOrder(t, db)
	in := CreateInput{OrderID: orderID, PaymentDate: day(2026, 8, 28), Amount: 4990, PaymentMethod: "pix"}

	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, payment.ErrOrderAlreadyPaid)
}

func TestService_GetByOrderWithoutPayment(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	orderID := seedOrder(t, db)

	_, err := svc.GetByOrder(ctx, orderID)
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestService_UpdateKeepsOrderBinding(t *testing.T) {
	svc, db, cache := newTestService(t)
	ctx := context.Background()

	orderID := seedOrder(t, db)
	p, err := svc.Create(ctx, CreateInput{OrderID: orderID, PaymentDate: day(2026, 8, 28), Amount: 4990, PaymentMethod: "pix"})
	require.NoError(t, err)

	amount := int64(5500)
	updated, err := svc.Update(ctx, p.ID, UpdateInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, int64(5500), updated.Amount)
	assert.Equal(t, orderID, updated.OrderID)
	assert.Equal(t, "pix", updated.PaymentMethod)

	// 创建+更新各失效一次
	assert.Equal(t, []uint{orderID, orderID}, cache.invalidated)
}

func TestService_DeleteUnblocksOrder(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	orderID := seedOrder(t, db)
	p, err := svc.Create(ctx, CreateInput{OrderID: orderID, PaymentDate: day(2026, 8, 28), Amount: 4990, PaymentMethod: "pix"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)

	// 支付删除后订单可以删除了
	orderRepo := mysql.NewOrderRepository(db)
	assert.NoError(t, orderRepo.Delete(ctx, orderID))
}
