package handler

import (
	"github.com/gin-gonic/gin"

	apppay "github.com/xiebiao/livraria/internal/application/payment"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/response"
)

// PaymentHandler 支付HTTP处理器
type PaymentHandler struct {
	service *apppay.Service
}

// NewPaymentHandler 创建支付处理器
func NewPaymentHandler(service *apppay.Service) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Create 创建支付
// @Summary      创建支付
// @Description  订单必须存在；同一订单的第二笔支付返回400
// @Tags         Pagamentos
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePaymentRequest true "支付信息"
// @Success      201 {object} dto.PaymentResponse
// @Failure      400 {object} response.ErrorBody "订单不存在或已有支付"
// @Router       /pagamentos [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	in, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewPaymentResponse(p))
}

// Get 支付详情
// @Summary      支付详情
// @Tags         Pagamentos
// @Produce      json
// @Param        id path int true "支付ID"
// @Success      200 {object} dto.PaymentResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /pagamentos/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPaymentResponse(p))
}

// List 支付列表
// @Summary      支付列表
// @Tags         Pagamentos
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.PaymentResponse}
// @Router       /pagamentos [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.BindError(err, "Parâmetros inválidos"))
		return
	}

	page, err := h.service.List(c.Request.Context(), listing.NewQuery(q.Page, q.Limit))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewPaymentResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Count 支付计数
// @Summary      支付计数
// @Tags         Pagamentos
// @Produce      json
// @Success      200 {object} dto.CountResponse
// @Router       /pagamentos/contar [get]
func (h *PaymentHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CountResponse{Quantidade: total})
}

// Filter 支付过滤查询
// @Summary      支付过滤查询
// @Tags         Pagamentos
// @Produce      json
// @Param        order_id query int false "订单ID"
// @Param        payment_method query string false "支付方式（子串匹配）"
// @Param        payment_date query string false "支付日期（AAAA-MM-DD）"
// @Param        amount_min query int false "金额下限（分）"
// @Param        amount_max query int false "金额上限（分）"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.PaymentResponse}
// @Failure      400 {object} response.ErrorBody "日期格式错误"
// @Router       /pagamentos/filtrar [get]
func (h *PaymentHandler) Filter(c *gin.Context) {
	var q dto.FilterPaymentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.BindError(err, "Parâmetros inválidos"))
		return
	}

	filters, err := q.Filters()
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), listing.NewQuery(q.Page, q.Limit, filters...))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewPaymentResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Update 支付部分更新
// @Summary      支付部分更新
// @Description  order_id不可改；只更新给出的字段
// @Tags         Pagamentos
// @Accept       json
// @Produce      json
// @Param        id path int true "支付ID"
// @Param        request body dto.UpdatePaymentRequest true "更新字段"
// @Success      200 {object} dto.PaymentResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /pagamentos/{id} [patch]
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	in, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPaymentResponse(p))
}

// Delete 删除支付
// @Summary      删除支付
// @Description  删除后对应订单重新变为可删除状态
// @Tags         Pagamentos
// @Produce      json
// @Param        id path int true "支付ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /pagamentos/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Pagamento deletado com sucesso")
}
