package order

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/listing"
)

// Repository 订单仓储接口（依赖倒置：domain定义接口，infrastructure实现）
//
// 要点：
// 1. 订单头和关联行是一个原子单元：Create必须在同一事务里写入两者
// 2. 事务通过context传递（mysql.TxManager注入事务DB）
// 3. 读操作返回带Customer/Payment投影的完整聚合
type Repository interface {
	// Create 写入订单头+全部关联行，回填自增ID
	// 必须在事务context中调用；任一写入失败则整体回滚
	Create(ctx context.Context, o *Order) error

	// FindByID 查找订单，附带BookIDs、Customer、Payment投影
	FindByID(ctx context.Context, id uint) (*Order, error)

	// UpdateFields 部分更新订单头的标量字段
	// 不触碰关联行和支付记录；目标不存在返回ErrOrderNotFound
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error

	// Delete 删除订单及其关联行（同一事务）
	// 订单存在支付记录时返回ErrHasDependencies，两行都保持原样
	Delete(ctx context.Context, id uint) error

	// List 过滤+分页查询，返回页内每条订单的完整投影
	List(ctx context.Context, q listing.Query) (listing.Page[*Order], error)

	// Count 满足过滤条件的订单总数
	Count(ctx context.Context, filters ...listing.Filter) (int64, error)
}
