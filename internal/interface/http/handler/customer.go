package handler

import (
	"github.com/gin-gonic/gin"

	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/response"
)

// CustomerHandler 用户HTTP处理器
type CustomerHandler struct {
	service *appcat.CustomerService
}

// NewCustomerHandler 创建用户处理器
func NewCustomerHandler(service *appcat.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create 创建用户
// @Summary      创建用户
// @Description  tax_id（CPF）全局唯一，重复返回400
// @Tags         Usuários
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCustomerRequest true "用户信息"
// @Success      201 {object} dto.CustomerResponse
// @Failure      400 {object} response.ErrorBody "CPF已存在"
// @Router       /usuarios [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	entity, err := req.ToEntity()
	if err != nil {
		response.Error(c, err)
		return
	}

	cust, err := h.service.Create(c.Request.Context(), entity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewCustomerResponse(cust))
}

// Get 用户详情
// @Summary      用户详情
// @Tags         Usuários
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /usuarios/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cust, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCustomerResponse(cust))
}

// List 用户列表
// @Summary      用户列表
// @Tags         Usuários
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.CustomerResponse}
// @Router       /usuarios [get]
func (h *CustomerHandler) List(c *gin.Context) {
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

	response.SuccessWithPage(c, dto.NewCustomerResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Count 用户计数
// @Summary      用户计数
// @Tags         Usuários
// @Produce      json
// @Success      200 {object} dto.CountResponse
// @Router       /usuarios/contar [get]
func (h *CustomerHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CountResponse{Quantidade: total})
}

// Filter 用户过滤查询
// @Summary      用户过滤查询
// @Tags         Usuários
// @Produce      json
// @Param        name query string false "姓名（子串匹配）"
// @Param        email query string false "邮箱（子串匹配）"
// @Param        tax_id query string false "CPF（精确匹配）"
// @Param        registration_date query string false "注册日期（AAAA-MM-DD）"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.CustomerResponse}
// @Failure      400 {object} response.ErrorBody "日期格式错误"
// @Router       /usuarios/filtrar [get]
func (h *CustomerHandler) Filter(c *gin.Context) {
	var q dto.FilterCustomersQuery
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

	response.SuccessWithPage(c, dto.NewCustomerResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Update 用户部分更新
// @Summary      用户部分更新
// @Tags         Usuários
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateCustomerRequest true "更新字段"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody "CPF已存在"
// @Router       /usuarios/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		response.Error(c, err)
		return
	}

	cust, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCustomerResponse(cust))
}

// Delete 删除用户
// @Summary      删除用户
// @Description  名下仍有订单时返回400
// @Tags         Usuários
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody "存在订单依赖"
// @Router       /usuarios/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Usuário deletado com sucesso")
}
