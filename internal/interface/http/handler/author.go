package handler

import (
	"github.com/gin-gonic/gin"

	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	service *appcat.AuthorService
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(service *appcat.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         Autores
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} dto.AuthorResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /autores [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	entity, err := req.ToEntity()
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), entity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAuthorResponse(a))
}

// Get 作者详情
// @Summary      作者详情
// @Tags         Autores
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /autores/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// List 作者列表
// @Summary      作者列表
// @Tags         Autores
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.AuthorResponse}
// @Router       /autores [get]
func (h *AuthorHandler) List(c *gin.Context) {
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

	response.SuccessWithPage(c, dto.NewAuthorResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Count 作者计数
// @Summary      作者计数
// @Tags         Autores
// @Produce      json
// @Success      200 {object} dto.CountResponse
// @Router       /autores/contar [get]
func (h *AuthorHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CountResponse{Quantidade: total})
}

// Filter 作者过滤查询
// @Summary      作者过滤查询
// @Tags         Autores
// @Produce      json
// @Param        name query string false "姓名（子串匹配）"
// @Param        email query string false "邮箱（子串匹配）"
// @Param        nationality query string false "国籍（子串匹配）"
// @Param        birth_date query string false "出生日期（AAAA-MM-DD）"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.AuthorResponse}
// @Failure      400 {object} response.ErrorBody "日期格式错误"
// @Router       /autores/filtrar [get]
func (h *AuthorHandler) Filter(c *gin.Context) {
	var q dto.FilterAuthorsQuery
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

	response.SuccessWithPage(c, dto.NewAuthorResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Update 作者部分更新
// @Summary      作者部分更新
// @Tags         Autores
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "更新字段"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /autores/{id} [patch]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// Delete 删除作者
// @Summary      删除作者
// @Description  名下仍有图书时返回400
// @Tags         Autores
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody "存在图书依赖"
// @Router       /autores/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Autor deletado com sucesso")
}
