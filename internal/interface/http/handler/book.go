package handler

import (
	"github.com/gin-gonic/gin"

	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	service *appcat.BookService
}

// NewBookHandler 创建图书处理器
func NewBookHandler(service *appcat.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// Create 创建图书
// @Summary      创建图书
// @Description  author_id/publisher_id可空，给出时必须存在
// @Tags         Livros
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "引用的作者/出版社不存在或价格为负"
// @Router       /livros [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	b, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(b))
}

// Get 图书详情
// @Summary      图书详情
// @Tags         Livros
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /livros/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// List 图书列表
// @Summary      图书列表
// @Tags         Livros
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.BookResponse}
// @Router       /livros [get]
func (h *BookHandler) List(c *gin.Context) {
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

	response.SuccessWithPage(c, dto.NewBookResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Count 图书计数
// @Summary      图书计数
// @Tags         Livros
// @Produce      json
// @Success      200 {object} dto.CountResponse
// @Router       /livros/contar [get]
func (h *BookHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CountResponse{Quantidade: total})
}

// Filter 图书过滤查询
// @Summary      图书过滤查询
// @Tags         Livros
// @Produce      json
// @Param        title query string false "标题（子串匹配）"
// @Param        genre query string false "类型（子串匹配）"
// @Param        author_id query int false "作者ID"
// @Param        publisher_id query int false "出版社ID"
// @Param        price_min query int false "价格下限（分）"
// @Param        price_max query int false "价格上限（分）"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.BookResponse}
// @Router       /livros/filtrar [get]
func (h *BookHandler) Filter(c *gin.Context) {
	var q dto.FilterBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.BindError(err, "Parâmetros inválidos"))
		return
	}

	page, err := h.service.List(c.Request.Context(),
		listing.NewQuery(q.Page, q.Limit, q.Filters()...))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewBookResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Update 图书部分更新
// @Summary      图书部分更新
// @Tags         Livros
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody
// @Router       /livros/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Description  图书出现在订单关联中时返回400
// @Tags         Livros
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody "存在订单依赖"
// @Router       /livros/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Livro deletado com sucesso")
}
