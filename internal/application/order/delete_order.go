package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/livraria/internal/domain/order"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
)

// DeleteOrderUseCase 删除订单用例
// 策略：
// 1. 关联行归订单所有，随订单在同一事务中删除
// 2. 存在支付记录时拒绝删除（ErrHasDependencies），订单与支付都保持原样
type DeleteOrderUseCase struct {
	orderRepo order.Repository
	txManager *mysql.TxManager
	cache     Cache
	events    EventPublisher
	logger    *zap.Logger
}

// NewDeleteOrderUseCase 创建删除用例
func NewDeleteOrderUseCase(
	orderRepo order.Repository,
	txManager *mysql.TxManager,
	cache Cache,
	events EventPublisher,
	logger *zap.Logger,
) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		cache:     cache,
		events:    events,
		logger:    logger,
	}
}

// Execute 执行删除
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.orderRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, id); err != nil {
			uc.logger.Warn("失效订单缓存失败", zap.Uint("order_id", id), zap.Error(err))
		}
	}

	if uc.events != nil {
		event := OrderEvent{OrderID: id, OccurredAt: time.Now()}
		if err := uc.events.Publish(ctx, EventOrderDeleted, event); err != nil {
			uc.logger.Warn("发布订单事件失败",
				zap.String("routing_key", EventOrderDeleted),
				zap.Uint("order_id", id),
				zap.Error(err))
		}
	}

	return nil
}
