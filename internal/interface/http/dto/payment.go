package dto

import (
	apppay "github.com/xiebiao/livraria/internal/application/payment"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/domain/payment"
)

// CreatePaymentRequest 创建支付请求
// 一个订单至多一笔支付，重复创建返回约束冲突错误
type CreatePaymentRequest struct {
	OrderID       uint   `json:"order_id" binding:"required" example:"1"`
	PaymentDate   string `json:"payment_date" binding:"required" example:"2026-08-28"`
	Amount        int64  `json:"amount" binding:"min=0" example:"9980"`
	PaymentMethod string `json:"payment_method" binding:"required,max=50" example:"pix"`
}

// ToInput 转换为应用层输入
func (r *CreatePaymentRequest) ToInput() (apppay.CreateInput, error) {
	date, err := ParseDate("payment_date", r.PaymentDate)
	if err != nil {
		return apppay.CreateInput{}, err
	}
	return apppay.CreateInput{
		OrderID:       r.OrderID,
		PaymentDate:   date,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

// UpdatePaymentRequest 部分更新请求；order_id不可改
type UpdatePaymentRequest struct {
	PaymentDate   *string `json:"payment_date" example:"2026-08-29"`
	Amount        *int64  `json:"amount" binding:"omitempty,min=0"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,max=50"`
}

// ToInput 转换为应用层输入
func (r *UpdatePaymentRequest) ToInput() (apppay.UpdateInput, error) {
	in := apppay.UpdateInput{
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
	}
	if r.PaymentDate != nil {
		date, err := ParseDate("payment_date", *r.PaymentDate)
		if err != nil {
			return apppay.UpdateInput{}, err
		}
		in.PaymentDate = &date
	}
	return in, nil
}

// PaymentResponse 支付响应
type PaymentResponse struct {
	ID            uint   `json:"id" example:"1"`
	OrderID       uint   `json:"order_id" example:"1"`
	PaymentDate   string `json:"payment_date" example:"2026-08-28"`
	Amount        int64  `json:"amount" example:"9980"`
	PaymentMethod string `json:"payment_method" example:"pix"`
}

// NewPaymentResponse 领域实体 → 响应DTO
func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		PaymentDate:   FormatDate(p.PaymentDate),
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
	}
}

// NewPaymentResponseList 批量转换
func NewPaymentResponseList(payments []*payment.Payment) []*PaymentResponse {
	out := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = NewPaymentResponse(p)
	}
	return out
}

// FilterPaymentsQuery 过滤查询参数（/pagamentos/filtrar）
type FilterPaymentsQuery struct {
	PageQuery
	OrderID       *uint  `form:"order_id"`
	PaymentMethod string `form:"payment_method" example:"pix"`
	PaymentDate   string `form:"payment_date" example:"2026-08-28"`
	AmountMin     *int64 `form:"amount_min"`
	AmountMax     *int64 `form:"amount_max"`
}

// Filters 构建过滤条件
func (q *FilterPaymentsQuery) Filters() ([]listing.Filter, error) {
	var filters []listing.Filter
	if q.OrderID != nil {
		filters = append(filters, listing.Eq("order_id", *q.OrderID))
	}
	if q.PaymentMethod != "" {
		filters = append(filters, listing.Contains("payment_method", q.PaymentMethod))
	}
	if q.PaymentDate != "" {
		day, err := ParseDate("payment_date", q.PaymentDate)
		if err != nil {
			return nil, err
		}
		filters = append(filters, listing.DateEq("payment_date", day))
	}
	if q.AmountMin != nil {
		filters = append(filters, listing.Gte("amount", *q.AmountMin))
	}
	if q.AmountMax != nil {
		filters = append(filters, listing.Lte("amount", *q.AmountMax))
	}
	return filters, nil
}
