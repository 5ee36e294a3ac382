package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/livraria/internal/domain/order"
)

// GetOrderUseCase 订单详情查询用例
// Cache-Aside：先查缓存，未命中查数据库并回填
type GetOrderUseCase struct {
	orderRepo order.Repository
	cache     Cache
	logger    *zap.Logger
}

// NewGetOrderUseCase 创建详情查询用例
func NewGetOrderUseCase(orderRepo order.Repository, cache Cache, logger *zap.Logger) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, cache: cache, logger: logger}
}

// Execute 查询订单（含book_ids、customer、payment投影）
func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*order.Order, error) {
	// 1. 查缓存（缓存故障降级为未命中）
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, id)
		if err != nil {
			uc.logger.Warn("读取订单缓存失败", zap.Uint("order_id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	// 2. 回源数据库
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, o); err != nil {
			uc.logger.Warn("回填订单缓存失败", zap.Uint("order_id", id), zap.Error(err))
		}
	}

	return o, nil
}
