package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/order"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// UpdateOrderUseCase 订单部分更新用例
// 只更新订单头的标量字段；关联图书集合在创建时固定，不支持改签
type UpdateOrderUseCase struct {
	orderRepo    order.Repository
	customerRepo catalog.Repository[catalog.Customer]
	txManager    *mysql.TxManager
	cache        Cache
	logger       *zap.Logger
}

// NewUpdateOrderUseCase 创建更新用例
func NewUpdateOrderUseCase(
	orderRepo order.Repository,
	customerRepo catalog.Repository[catalog.Customer],
	txManager *mysql.TxManager,
	cache Cache,
	logger *zap.Logger,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		cache:        cache,
		logger:       logger,
	}
}

// UpdateOrderInput 部分更新输入：nil字段保持原值
type UpdateOrderInput struct {
	CustomerID *uint
	OrderDate  *time.Time
	Status     *string
	TotalValue *int64
}

// Execute 执行订单更新
// 返回更新后的完整订单投影
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, id uint, in UpdateOrderInput) (*order.Order, error) {
	fields := make(map[string]interface{})
	if in.CustomerID != nil {
		fields["customer_id"] = *in.CustomerID
	}
	if in.OrderDate != nil {
		fields["order_date"] = *in.OrderDate
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.TotalValue != nil {
		fields["total_value"] = *in.TotalValue
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if in.CustomerID != nil {
			exists, err := uc.customerRepo.Exists(txCtx, *in.CustomerID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.InvalidReference("Usuário", *in.CustomerID)
			}
		}
		return uc.orderRepo.UpdateFields(txCtx, id, fields)
	})
	if err != nil {
		return nil, err
	}

	// 失效缓存（Cache-Aside：删除而非双写）
	uc.invalidate(ctx, id)

	return uc.orderRepo.FindByID(ctx, id)
}

func (uc *UpdateOrderUseCase) invalidate(ctx context.Context, id uint) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, id); err != nil {
		uc.logger.Warn("失效订单缓存失败", zap.Uint("order_id", id), zap.Error(err))
	}
}
