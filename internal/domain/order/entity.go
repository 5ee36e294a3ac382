package order

import (
	"time"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/payment"
)

// Order 订单实体（聚合根）
//
// 聚合边界：
// 1. 订单头 + pedido_livro关联行归订单所有：随订单创建，随订单删除
// 2. Payment与订单1:1，但有独立生命周期，删除订单时它是阻塞依赖
// 3. Customer/Payment字段是读投影（列表/详情时预加载），不参与写入
//
// TotalValue由调用方提供，不从关联图书价格推导（与历史行为一致）；
// 一致性校验通过ComputedTotal单独暴露，见对账接口。
type Order struct {
	ID         uint
	CustomerID *uint     // 可空外键
	OrderDate  time.Time // 按天存储
	Status     string    // 自由文本状态标签（pendente/enviado/entregue...）
	TotalValue int64     // 订单总金额（分），冗余字段
	BookIDs    []uint    // 关联图书ID集合（多对多）

	// 读投影（eager加载，可能为nil）
	Customer *catalog.Customer
	Payment  *payment.Payment
}

// NewOrder 创建新订单（工厂方法）
// book_ids允许为空；重复ID去重，保证关联行集合与请求集合一致
func NewOrder(customerID *uint, orderDate time.Time, status string, totalValue int64, bookIDs []uint) *Order {
	return &Order{
		CustomerID: customerID,
		OrderDate:  orderDate,
		Status:     status,
		TotalValue: totalValue,
		BookIDs:    dedupe(bookIDs),
	}
}

// dedupe 去重并保持首次出现顺序
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// ComputedTotal 按关联图书单价汇总出的总额（分）
// 用于对账：与存储的TotalValue比较，而不是默默信任调用方输入
func (o *Order) ComputedTotal(prices map[uint]int64) int64 {
	var total int64
	for _, id := range o.BookIDs {
		total += prices[id]
	}
	return total
}

// Consistent 存储总额与计算总额是否一致
func (o *Order) Consistent(prices map[uint]int64) bool {
	return o.TotalValue == o.ComputedTotal(prices)
}

// HasPayment 是否已有支付记录（删除订单前的依赖检查）
func (o *Order) HasPayment() bool {
	return o.Payment != nil
}
