package order

import (
	"context"
	"time"

	"github.com/xiebiao/livraria/internal/domain/order"
)

// Cache 订单读投影缓存（可选协作方，nil时跳过）
// 缓存故障不阻塞主流程：用例记日志后继续走数据库
type Cache interface {
	Get(ctx context.Context, id uint) (*order.Order, error)
	Set(ctx context.Context, o *order.Order) error
	Delete(ctx context.Context, id uint) error
}

// EventPublisher 领域事件发布接口（可选协作方，nil时跳过）
// 实现见pkg/mq；发布失败只记日志，不回滚业务事务
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// 路由键约定：<实体>.<动作>
const (
	EventOrderCreated = "order.created"
	EventOrderDeleted = "order.deleted"
)

// OrderEvent 订单事件载荷
type OrderEvent struct {
	OrderID    uint      `json:"order_id"`
	CustomerID *uint     `json:"customer_id,omitempty"`
	Status     string    `json:"status"`
	TotalValue int64     `json:"total_value"`
	OccurredAt time.Time `json:"occurred_at"`
}
