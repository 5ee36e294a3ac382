package order

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/domain/order"
)

// ListOrdersUseCase 订单列表/过滤/计数用例
// 列表不走缓存（组合爆炸，命中率低），直接查库
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建列表查询用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 过滤+分页查询
// 过滤条件之间为AND关系；零匹配返回空页+total=0，不视为错误
func (uc *ListOrdersUseCase) Execute(ctx context.Context, q listing.Query) (listing.Page[*order.Order], error) {
	return uc.orderRepo.List(ctx, q)
}

// Count 满足过滤条件的订单总数
func (uc *ListOrdersUseCase) Count(ctx context.Context, filters ...listing.Filter) (int64, error) {
	return uc.orderRepo.Count(ctx, filters...)
}
