package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/order"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/metrics"
)

// CreateOrderUseCase 创建订单用例
// 要点：这是整个项目最核心的用例
// 涉及：事务处理、引用校验、关联行原子写入
type CreateOrderUseCase struct {
	orderRepo    order.Repository
	customerRepo catalog.Repository[catalog.Customer]
	books        catalog.BookLookup
	txManager    *mysql.TxManager
	events       EventPublisher
	logger       *zap.Logger
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	customerRepo catalog.Repository[catalog.Customer],
	books catalog.BookLookup,
	txManager *mysql.TxManager,
	events EventPublisher,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		books:        books,
		txManager:    txManager,
		events:       events,
		logger:       logger,
	}
}

// CreateOrderInput 下单输入
// total_value由调用方提供，不从图书价格推导（历史行为，对账接口单独校验）
type CreateOrderInput struct {
	CustomerID *uint
	OrderDate  time.Time
	Status     string
	TotalValue int64
	BookIDs    []uint
}

// Execute 执行下单用例
//
// 原子性保证：引用校验、订单头、全部关联行在同一事务中完成。
// 任一book_id无效或任一关联行写入失败时整体回滚，
// 不会出现"订单头已存在但关联行缺失"的中间状态。
func (uc *CreateOrderUseCase) Execute(ctx context.Context, in CreateOrderInput) (*order.Order, error) {
	start := time.Now()

	o := order.NewOrder(in.CustomerID, in.OrderDate, in.Status, in.TotalValue, in.BookIDs)

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 校验customer引用
		if err := uc.validateCustomer(txCtx, in.CustomerID); err != nil {
			return err
		}

		// 2. 批量校验book_ids（一次IN查询，不逐个往返）
		if err := uc.validateBooks(txCtx, o.BookIDs); err != nil {
			return err
		}

		// 3. 写入订单头+关联行
		return uc.orderRepo.Create(txCtx, o)
	})

	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderCreationDuration.Observe(time.Since(start).Seconds())

	// 事务提交后发布事件；发布失败只记日志，订单已经生效
	uc.publishEvent(ctx, EventOrderCreated, o)

	return o, nil
}

func (uc *CreateOrderUseCase) validateCustomer(ctx context.Context, customerID *uint) error {
	if customerID == nil {
		return nil
	}
	exists, err := uc.customerRepo.Exists(ctx, *customerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.InvalidReference("Usuário", *customerID)
	}
	return nil
}

func (uc *CreateOrderUseCase) validateBooks(ctx context.Context, bookIDs []uint) error {
	if len(bookIDs) == 0 {
		return nil
	}
	existing, err := uc.books.ExistingIDs(ctx, bookIDs)
	if err != nil {
		return err
	}
	for _, id := range bookIDs {
		if !existing[id] {
			return apperrors.InvalidReference("Livro", id)
		}
	}
	return nil
}

func (uc *CreateOrderUseCase) publishEvent(ctx context.Context, routingKey string, o *order.Order) {
	if uc.events == nil {
		return
	}
	event := OrderEvent{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		TotalValue: o.TotalValue,
		OccurredAt: time.Now(),
	}
	if err := uc.events.Publish(ctx, routingKey, event); err != nil {
		uc.logger.Warn("发布订单事件失败",
			zap.String("routing_key", routingKey),
			zap.Uint("order_id", o.ID),
			zap.Error(err))
	}
}
