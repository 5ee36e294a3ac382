package payment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/domain/order"
	"github.com/xiebiao/livraria/internal/domain/payment"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// OrderCache 订单投影缓存失效接口
// 支付记录出现在订单详情投影里，支付的任何写操作都要失效对应订单的缓存
type OrderCache interface {
	Delete(ctx context.Context, orderID uint) error
}

// Service 支付应用服务
// 一个订单至多一笔支付：数据库唯一索引兜底，重复创建返回ErrOrderAlreadyPaid
type Service struct {
	paymentRepo payment.Repository
	orderRepo   order.Repository
	txManager   *mysql.TxManager
	orderCache  OrderCache
	logger      *zap.Logger
}

// NewService 创建支付服务
func NewService(
	paymentRepo payment.Repository,
	orderRepo order.Repository,
	txManager *mysql.TxManager,
	orderCache OrderCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
		orderCache:  orderCache,
		logger:      logger,
	}
}

// CreateInput 创建支付输入
type CreateInput struct {
	OrderID       uint
	PaymentDate   time.Time
	Amount        int64
	PaymentMethod string
}

// Create 创建支付记录
// 订单存在性检查和插入在同一事务里；唯一索引保证并发下也不会出现第二笔
func (s *Service) Create(ctx context.Context, in CreateInput) (*payment.Payment, error) {
	p := &payment.Payment{
		OrderID:       in.OrderID,
		PaymentDate:   in.PaymentDate,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
	}

	err := s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := s.orderRepo.FindByID(txCtx, in.OrderID); err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				return apperrors.InvalidReference("Pedido", in.OrderID)
			}
			return err
		}
		return s.paymentRepo.Create(txCtx, p)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateOrder(ctx, in.OrderID)
	return p, nil
}

// Get 按主键查找支付记录
func (s *Service) Get(ctx context.Context, id uint) (*payment.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// GetByOrder 按订单查找支付记录；无支付时返回ErrPaymentNotFound
func (s *Service) GetByOrder(ctx context.Context, orderID uint) (*payment.Payment, error) {
	p, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, payment.ErrPaymentNotFound
	}
	return p, nil
}

// UpdateInput 部分更新输入：nil字段保持原值
// order_id不可改：支付和订单的绑定关系在创建时固定
type UpdateInput struct {
	PaymentDate   *time.Time
	Amount        *int64
	PaymentMethod *string
}

// Update 部分更新支付记录，返回更新后的完整记录
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*payment.Payment, error) {
	fields := make(map[string]interface{})
	if in.PaymentDate != nil {
		fields["payment_date"] = *in.PaymentDate
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.PaymentMethod != nil {
		fields["payment_method"] = *in.PaymentMethod
	}

	if err := s.paymentRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateOrder(ctx, p.OrderID)
	return p, nil
}

// Delete 删除支付记录
// 删除后对应订单重新变为可删除状态
func (s *Service) Delete(ctx context.Context, id uint) error {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateOrder(ctx, p.OrderID)
	return nil
}

// List 过滤+分页查询
func (s *Service) List(ctx context.Context, q listing.Query) (listing.Page[*payment.Payment], error) {
	return s.paymentRepo.List(ctx, q)
}

// Count 满足过滤条件的支付总数
func (s *Service) Count(ctx context.Context, filters ...listing.Filter) (int64, error) {
	return s.paymentRepo.Count(ctx, filters...)
}

func (s *Service) invalidateOrder(ctx context.Context, orderID uint) {
	if s.orderCache == nil {
		return
	}
	if err := s.orderCache.Delete(ctx, orderID); err != nil {
		s.logger.Warn("失效订单缓存失败", zap.Uint("order_id", orderID), zap.Error(err))
	}
}
