package dto

import (
	appord "github.com/xiebiao/livraria/internal/application/order"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/domain/order"
)

// CreateOrderRequest 创建订单请求
// total_value由调用方提供（分），不从图书价格推导；对账见/pedidos/{id}/conferir
type CreateOrderRequest struct {
	CustomerID *uint  `json:"customer_id" example:"1"`
	OrderDate  string `json:"order_date" binding:"required" example:"2026-08-28"`
	Status     string `json:"status" binding:"required,max=50" example:"pendente"`
	TotalValue int64  `json:"total_value" binding:"min=0" example:"9980"`
	BookIDs    []uint `json:"book_ids" example:"1,2"`
}

// ToInput 转换为应用层输入（含日期解析）
func (r *CreateOrderRequest) ToInput() (appord.CreateOrderInput, error) {
	date, err := ParseDate("order_date", r.OrderDate)
	if err != nil {
		return appord.CreateOrderInput{}, err
	}
	return appord.CreateOrderInput{
		CustomerID: r.CustomerID,
		OrderDate:  date,
		Status:     r.Status,
		TotalValue: r.TotalValue,
		BookIDs:    r.BookIDs,
	}, nil
}

// UpdateOrderRequest 部分更新请求：缺省字段保持原值
type UpdateOrderRequest struct {
	CustomerID *uint   `json:"customer_id"`
	OrderDate  *string `json:"order_date" example:"2026-08-29"`
	Status     *string `json:"status" binding:"omitempty,max=50" example:"enviado"`
	TotalValue *int64  `json:"total_value" binding:"omitempty,min=0"`
}

// ToInput 转换为应用层输入
func (r *UpdateOrderRequest) ToInput() (appord.UpdateOrderInput, error) {
	in := appord.UpdateOrderInput{
		CustomerID: r.CustomerID,
		Status:     r.Status,
		TotalValue: r.TotalValue,
	}
	if r.OrderDate != nil {
		date, err := ParseDate("order_date", *r.OrderDate)
		if err != nil {
			return appord.UpdateOrderInput{}, err
		}
		in.OrderDate = &date
	}
	return in, nil
}

// OrderResponse 订单读投影
// customer/payment是eager加载的投影，可能为null
type OrderResponse struct {
	ID         uint              `json:"id" example:"1"`
	CustomerID *uint             `json:"customer_id" example:"1"`
	OrderDate  string            `json:"order_date" example:"2026-08-28"`
	Status     string            `json:"status" example:"pendente"`
	TotalValue int64             `json:"total_value" example:"9980"`
	BookIDs    []uint            `json:"book_ids"`
	Customer   *CustomerResponse `json:"customer,omitempty"`
	Payment    *PaymentResponse  `json:"payment,omitempty"`
}

// NewOrderResponse 领域实体 → 响应DTO
func NewOrderResponse(o *order.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  FormatDate(o.OrderDate),
		Status:     o.Status,
		TotalValue: o.TotalValue,
		BookIDs:    o.BookIDs,
	}
	if resp.BookIDs == nil {
		resp.BookIDs = []uint{}
	}
	if o.Customer != nil {
		resp.Customer = NewCustomerResponse(o.Customer)
	}
	if o.Payment != nil {
		resp.Payment = NewPaymentResponse(o.Payment)
	}
	return resp
}

// NewOrderResponseList 批量转换（列表接口用）
func NewOrderResponseList(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}

// ListOrdersQuery 列表查询参数
type ListOrdersQuery struct {
	PageQuery
	CustomerID *uint `form:"customer_id"`
}

// Filters 构建过滤条件
func (q *ListOrdersQuery) Filters() []listing.Filter {
	var filters []listing.Filter
	if q.CustomerID != nil {
		filters = append(filters, listing.Eq("customer_id", *q.CustomerID))
	}
	return filters
}

// FilterOrdersQuery 过滤查询参数（/pedidos/filtrar）
// 过滤条件之间为AND关系
type FilterOrdersQuery struct {
	PageQuery
	CustomerID *uint  `form:"customer_id"`
	Status     string `form:"status" example:"pendente"`
	OrderDate  string `form:"order_date" example:"2026-08-28"`
	ValueMin   *int64 `form:"value_min"`
	ValueMax   *int64 `form:"value_max"`
}

// Filters 构建过滤条件（含日期解析）
func (q *FilterOrdersQuery) Filters() ([]listing.Filter, error) {
	var filters []listing.Filter
	if q.CustomerID != nil {
		filters = append(filters, listing.Eq("customer_id", *q.CustomerID))
	}
	if q.Status != "" {
		filters = append(filters, listing.Contains("status", q.Status))
	}
	if q.OrderDate != "" {
		day, err := ParseDate("order_date", q.OrderDate)
		if err != nil {
			return nil, err
		}
		filters = append(filters, listing.DateEq("order_date", day))
	}
	if q.ValueMin != nil {
		filters = append(filters, listing.Gte("total_value", *q.ValueMin))
	}
	if q.ValueMax != nil {
		filters = append(filters, listing.Lte("total_value", *q.ValueMax))
	}
	return filters, nil
}

// ReconcileResponse 订单对账响应
type ReconcileResponse struct {
	Order         *OrderResponse `json:"order"`
	StoredTotal   int64          `json:"stored_total" example:"9980"`
	ComputedTotal int64          `json:"computed_total" example:"9980"`
	Consistent    bool           `json:"consistent" example:"true"`
}
