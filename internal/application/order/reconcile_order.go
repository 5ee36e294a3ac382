package order

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/order"
)

// ReconcileOrderUseCase 订单总额对账用例
// total_value是调用方提供的冗余字段，不从图书价格推导；
// 这里把存储总额和按当前图书单价汇总的总额放在一起，暴露偏差而不是静默修正
type ReconcileOrderUseCase struct {
	orderRepo order.Repository
	books     catalog.BookLookup
}

// NewReconcileOrderUseCase 创建对账用例
func NewReconcileOrderUseCase(orderRepo order.Repository, books catalog.BookLookup) *ReconcileOrderUseCase {
	return &ReconcileOrderUseCase{orderRepo: orderRepo, books: books}
}

// ReconcileResult 对账结果
type ReconcileResult struct {
	Order         *order.Order
	StoredTotal   int64 // 订单存储的total_value（分）
	ComputedTotal int64 // 按当前图书单价汇总（分）
	Consistent    bool
}

// Execute 执行对账
// 注意：使用图书的当前单价，图书改价后历史订单会显示为不一致，
// 这正是对账要暴露的信息
func (uc *ReconcileOrderUseCase) Execute(ctx context.Context, id uint) (*ReconcileResult, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prices := map[uint]int64{}
	if len(o.BookIDs) > 0 {
		prices, err = uc.books.PricesByID(ctx, o.BookIDs)
		if err != nil {
			return nil, err
		}
	}

	computed := o.ComputedTotal(prices)
	return &ReconcileResult{
		Order:         o,
		StoredTotal:   o.TotalValue,
		ComputedTotal: computed,
		Consistent:    o.TotalValue == computed,
	}, nil
}
