package catalog

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/listing"
)

// Repository 泛型仓储接口（依赖倒置：domain定义接口，infrastructure实现）
//
// 设计说明：
// 目录实体的数据访问形态完全一致，只有字段不同，
// 因此用一个类型参数化的接口替代逐实体复制的仓储定义。
// 写操作支持通过context参与事务（见mysql.TxManager）。
type Repository[E any] interface {
	// Create 插入记录并回填自增ID
	Create(ctx context.Context, entity *E) error

	// FindByID 按主键查找，不存在时返回对应实体的NotFound错误
	FindByID(ctx context.Context, id uint) (*E, error)

	// UpdateFields 部分更新：只写入给出的列，其余保持不变
	// fields的key为数据库列名；目标不存在时返回NotFound
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error

	// Delete 按主键删除；不存在返回NotFound，
	// 被外键引用阻止时返回DependencyConflict
	Delete(ctx context.Context, id uint) error

	// List 过滤+分页查询，按主键升序稳定排序
	List(ctx context.Context, q listing.Query) (listing.Page[*E], error)

	// Count 满足过滤条件的记录总数
	Count(ctx context.Context, filters ...listing.Filter) (int64, error)

	// Exists 主键存在性检查（引用校验用）
	Exists(ctx context.Context, id uint) (bool, error)
}

// BookLookup 图书查找接口（订单聚合的协作方）
// 订单创建时校验book_ids、对账时汇总图书价格都通过它完成
type BookLookup interface {
	// ExistingIDs 返回ids中真实存在的图书ID集合
	ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error)

	// PricesByID 返回ids对应的图书单价（分）
	PricesByID(ctx context.Context, ids []uint) (map[uint]int64, error)
}
