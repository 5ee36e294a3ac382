// Package payment 支付子域
//
// 一个支付记录恰好属于一个订单（payments.order_id唯一索引，
// 即1:1关系在数据库层强制，不只靠应用逻辑）。
package payment

import "time"

// Payment 支付实体
// Amount以分（centavo）存储
type Payment struct {
	ID            uint
	OrderID       uint
	PaymentDate   time.Time // 按天存储，wire格式AAAA-MM-DD
	Amount        int64
	PaymentMethod string
}
