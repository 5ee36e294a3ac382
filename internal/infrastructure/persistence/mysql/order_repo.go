package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/domain/order"
	"github.com/xiebiao/livraria/internal/domain/payment"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// orderRepository 订单仓储实现
// 要点：
// 1. 订单头和order_books关联行是一个聚合，必须一起写入/删除
// 2. 查询时Preload关联行+Customer+Payment，避免N+1
// 3. 事务通过context传递（dbFromContext）
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 写入订单头+全部关联行
// GORM会先插入订单头获得自增ID，再带着ID插入Links；
// 调用方（use case）负责把整个调用包进一个事务，
// 任何一行失败时订单头不会残留（区别于历史实现的两段提交）
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Customer", "Payment").Create(model).Error; err != nil {
		if isFKViolation(err) || isDuplicateError(err) {
			return order.ErrInvalidData
		}
		return apperrors.Wrap(err, "Erro interno ao criar pedido")
	}

	o.ID = model.ID
	return nil
}

// FindByID 查找订单（含关联行、Customer、Payment投影）
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Links").Preload("Customer").Preload("Payment").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "Erro ao buscar pedido")
	}

	return toOrderEntity(&model), nil
}

// UpdateFields 部分更新订单头的标量字段
// 不触碰关联行和支付记录
func (r *orderRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	db := dbFromContext(ctx, r.db)

	var count int64
	if err := db.Model(&OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "Erro ao buscar pedido")
	}
	if count == 0 {
		return order.ErrOrderNotFound
	}

	if len(fields) == 0 {
		return nil
	}

	err := db.Model(&OrderModel{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		if isFKViolation(err) || isDuplicateError(err) {
			return order.ErrInvalidData
		}
		return apperrors.Wrap(err, "Erro interno ao atualizar pedido")
	}
	return nil
}

// Delete 删除订单及其关联行
// 策略（显式声明，见模型定义）：
// - 关联行归订单所有：同一事务中随订单删除
// - 支付记录阻止删除：存在时返回ErrHasDependencies，订单与支付都保持原样
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	var count int64
	if err := db.Model(&OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "Erro ao buscar pedido")
	}
	if count == 0 {
		return order.ErrOrderNotFound
	}

	var payments int64
	if err := db.Model(&PaymentModel{}).Where("order_id = ?", id).Count(&payments).Error; err != nil {
		return apperrors.Wrap(err, "Erro ao verificar dependências")
	}
	if payments > 0 {
		return order.ErrHasDependencies
	}

	if err := db.Where("order_id = ?", id).Delete(&OrderBookModel{}).Error; err != nil {
		return apperrors.Wrap(err, "Erro interno ao deletar pedido")
	}

	result := db.Delete(&OrderModel{}, id)
	if result.Error != nil {
		// 兜底：并发创建的支付会撞上RESTRICT外键
		if isFKViolation(result.Error) {
			return order.ErrHasDependencies
		}
		return apperrors.Wrap(result.Error, "Erro interno ao deletar pedido")
	}
	return nil
}

// List 过滤+分页查询
// 返回页内每条订单的完整投影（Customer/Payment只对当前页预加载）
func (r *orderRepository) List(ctx context.Context, q listing.Query) (listing.Page[*order.Order], error) {
	page := listing.Page[*order.Order]{Page: q.Page, Limit: q.Limit, Items: []*order.Order{}}
	db := dbFromContext(ctx, r.db)

	query := applyFilters(db.Model(&OrderModel{}), q.Filters)
	if err := query.Count(&page.Total).Error; err != nil {
		return page, apperrors.Wrap(err, "Erro ao contar pedidos")
	}

	var models []OrderModel
	err := applyPage(query, q).
		Preload("Links").Preload("Customer").Preload("Payment").
		Find(&models).Error
	if err != nil {
		return page, apperrors.Wrap(err, "Erro ao listar pedidos")
	}

	for i := range models {
		page.Items = append(page.Items, toOrderEntity(&models[i]))
	}
	return page, nil
}

// Count 满足过滤条件的订单总数
func (r *orderRepository) Count(ctx context.Context, filters ...listing.Filter) (int64, error) {
	var total int64
	db := dbFromContext(ctx, r.db)

	err := applyFilters(db.Model(&OrderModel{}), filters).Count(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "Erro ao contar pedidos")
	}
	return total, nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	links := make([]OrderBookModel, len(o.BookIDs))
	for i, bookID := range o.BookIDs {
		links[i] = OrderBookModel{BookID: bookID}
	}

	return &OrderModel{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		Status:     o.Status,
		TotalValue: o.TotalValue,
		Links:      links,
	}
}

// toOrderEntity GORM模型 → 领域实体（含读投影）
func toOrderEntity(model *OrderModel) *order.Order {
	bookIDs := make([]uint, len(model.Links))
	for i, link := range model.Links {
		bookIDs[i] = link.BookID
	}

	o := &order.Order{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		OrderDate:  model.OrderDate,
		Status:     model.Status,
		TotalValue: model.TotalValue,
		BookIDs:    bookIDs,
	}

	if model.Customer != nil {
		o.Customer = &catalog.Customer{
			ID:               model.Customer.ID,
			Name:             model.Customer.Name,
			Email:            model.Customer.Email,
			TaxID:            model.Customer.TaxID,
			RegistrationDate: model.Customer.RegistrationDate,
		}
	}

	if model.Payment != nil {
		o.Payment = &payment.Payment{
			ID:            model.Payment.ID,
			OrderID:       model.Payment.OrderID,
			PaymentDate:   model.Payment.PaymentDate,
			Amount:        model.Payment.Amount,
			PaymentMethod: model.Payment.PaymentMethod,
		}
	}

	return o
}
