package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/livraria/internal/domain/order"
)

// OrderCache 订单读投影缓存
// 设计说明：
// 1. Cache-Aside策略：查询先查缓存，未命中回源数据库并回填
// 2. 写路径（创建/更新/删除/支付变更）只负责删除缓存，不做双写
// 3. 缓存的是完整投影（含book_ids/customer/payment），TTL从配置读取
// 4. 缓存故障不阻塞主流程：调用方把错误记日志后继续走数据库
type OrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOrderCache 创建订单缓存
func NewOrderCache(client *redis.Client, ttl time.Duration) *OrderCache {
	return &OrderCache{client: client, ttl: ttl}
}

// key命名：模块:实体:ID，如 pedido:detail:123
func orderKey(id uint) string {
	return fmt.Sprintf("pedido:detail:%d", id)
}

// Get 读取订单缓存，未命中返回(nil, nil)
func (c *OrderCache) Get(ctx context.Context, id uint) (*order.Order, error) {
	val, err := c.client.Get(ctx, orderKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取订单缓存失败: %w", err)
	}

	var o order.Order
	if err := json.Unmarshal([]byte(val), &o); err != nil {
		// 反序列化失败视为未命中，顺手清掉坏数据
		c.client.Del(ctx, orderKey(id))
		return nil, nil
	}
	return &o, nil
}

// Set 回填订单缓存
// SetEx原子地写值+TTL，避免Set和Expire之间宕机产生永久key
func (c *OrderCache) Set(ctx context.Context, o *order.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("订单序列化失败: %w", err)
	}

	if err := c.client.SetEx(ctx, orderKey(o.ID), string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("设置订单缓存失败: %w", err)
	}
	return nil
}

// Delete 失效订单缓存（订单或其支付记录变更时调用）
func (c *OrderCache) Delete(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, orderKey(id)).Err(); err != nil {
		return fmt.Errorf("删除订单缓存失败: %w", err)
	}
	return nil
}
