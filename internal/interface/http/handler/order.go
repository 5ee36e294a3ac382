package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/livraria/internal/application/order"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/response"
)

// OrderHandler 订单HTTP处理器
// 订单是聚合根：创建/删除涉及关联行和支付依赖，走专门的用例
type OrderHandler struct {
	createUC    *apporder.CreateOrderUseCase
	getUC       *apporder.GetOrderUseCase
	listUC      *apporder.ListOrdersUseCase
	updateUC    *apporder.UpdateOrderUseCase
	deleteUC    *apporder.DeleteOrderUseCase
	reconcileUC *apporder.ReconcileOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createUC *apporder.CreateOrderUseCase,
	getUC *apporder.GetOrderUseCase,
	listUC *apporder.ListOrdersUseCase,
	updateUC *apporder.UpdateOrderUseCase,
	deleteUC *apporder.DeleteOrderUseCase,
	reconcileUC *apporder.ReconcileOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		reconcileUC: reconcileUC,
	}
}

// parseID 解析路径参数{id}
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// Create 创建订单
// @Summary      创建订单
// @Description  创建订单头及全部图书关联（同一事务，任一book_id无效则整体失败）
// @Tags         Pedidos
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      201 {object} dto.OrderResponse
// @Failure      400 {object} response.ErrorBody "引用的用户/图书不存在或参数错误"
// @Failure      500 {object} response.ErrorBody
// @Router       /pedidos [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	in, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewOrderResponse(o))
}

// Get 订单详情
// @Summary      订单详情
// @Description  返回订单及book_ids、customer、payment投影（缓存加速）
// @Tags         Pedidos
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /pedidos/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	o, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// List 订单列表
// @Summary      订单列表
// @Tags         Pedidos
// @Produce      json
// @Param        customer_id query int false "按用户过滤"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.OrderResponse}
// @Router       /pedidos [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.BindError(err, "Parâmetros inválidos"))
		return
	}

	page, err := h.listUC.Execute(c.Request.Context(),
		listing.NewQuery(q.Page, q.Limit, q.Filters()...))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewOrderResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Count 订单计数
// @Summary      订单计数
// @Tags         Pedidos
// @Produce      json
// @Param        customer_id query int false "按用户过滤"
// @Success      200 {object} dto.CountResponse
// @Router       /pedidos/contar [get]
func (h *OrderHandler) Count(c *gin.Context) {
	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.BindError(err, "Parâmetros inválidos"))
		return
	}

	total, err := h.listUC.Count(c.Request.Context(), q.Filters()...)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CountResponse{Quantidade: total})
}

// Filter 订单过滤查询
// @Summary      订单过滤查询
// @Description  条件之间为AND关系；零匹配返回空页+total=0
// @Tags         Pedidos
// @Produce      json
// @Param        customer_id query int false "用户ID"
// @Param        status query string false "状态（子串匹配）"
// @Param        order_date query string false "下单日期（AAAA-MM-DD）"
// @Param        value_min query int false "总额下限（分）"
// @Param        value_max query int false "总额上限（分）"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.OrderResponse}
// @Failure      400 {object} response.ErrorBody "日期格式错误"
// @Router       /pedidos/filtrar [get]
func (h *OrderHandler) Filter(c *gin.Context) {
	var q dto.FilterOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.BindError(err, "Parâmetros inválidos"))
		return
	}

	filters, err := q.Filters()
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.listUC.Execute(c.Request.Context(),
		listing.NewQuery(q.Page, q.Limit, filters...))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewOrderResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Update 订单部分更新
// @Summary      订单部分更新
// @Description  只更新给出的字段；不触碰图书关联和支付
// @Tags         Pedidos
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderRequest true "更新字段"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody
// @Router       /pedidos/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	in, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// Delete 删除订单
// @Summary      删除订单
// @Description  同时删除图书关联行；存在支付记录时返回400
// @Tags         Pedidos
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody "存在支付依赖"
// @Router       /pedidos/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Pedido deletado com sucesso")
}

// Reconcile 订单总额对账
// @Summary      订单总额对账
// @Description  比较存储的total_value与按当前图书单价汇总的总额
// @Tags         Pedidos
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} dto.ReconcileResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /pedidos/{id}/conferir [get]
func (h *OrderHandler) Reconcile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.reconcileUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ReconcileResponse{
		Order:         dto.NewOrderResponse(result.Order),
		StoredTotal:   result.StoredTotal,
		ComputedTotal: result.ComputedTotal,
		Consistent:    result.Consistent,
	})
}
