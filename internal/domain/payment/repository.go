package payment

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/listing"
)

// Repository 支付仓储接口
type Repository interface {
	// Create 插入支付记录并回填ID
	// 同一订单的第二笔支付触发唯一索引冲突，返回ErrOrderAlreadyPaid
	Create(ctx context.Context, p *Payment) error

	// FindByID 按主键查找
	FindByID(ctx context.Context, id uint) (*Payment, error)

	// FindByOrderID 按订单查找（1:1，至多一条）；无支付时返回(nil, nil)
	FindByOrderID(ctx context.Context, orderID uint) (*Payment, error)

	// UpdateFields 部分更新
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error

	// Delete 按主键删除
	Delete(ctx context.Context, id uint) error

	// List 过滤+分页查询
	List(ctx context.Context, q listing.Query) (listing.Page[*Payment], error)

	// Count 满足过滤条件的记录总数
	Count(ctx context.Context, filters ...listing.Filter) (int64, error)
}
