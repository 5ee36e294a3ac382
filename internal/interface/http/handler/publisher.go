package handler

import (
	"github.com/gin-gonic/gin"

	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/response"
)

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	service *appcat.PublisherService
}

// NewPublisherHandler 创建出版社处理器
func NewPublisherHandler(service *appcat.PublisherService) *PublisherHandler {
	return &PublisherHandler{service: service}
}

// Create 创建出版社
// @Summary      创建出版社
// @Tags         Editoras
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePublisherRequest true "出版社信息"
// @Success      201 {object} dto.PublisherResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /editoras [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	p, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewPublisherResponse(p))
}

// Get 出版社详情
// @Summary      出版社详情
// @Tags         Editoras
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {object} dto.PublisherResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /editoras/{id} [get]
func (h *PublisherHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPublisherResponse(p))
}

// List 出版社列表
// @Summary      出版社列表
// @Tags         Editoras
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.PublisherResponse}
// @Router       /editoras [get]
func (h *PublisherHandler) List(c *gin.Context) {
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

	response.SuccessWithPage(c, dto.NewPublisherResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Count 出版社计数
// @Summary      出版社计数
// @Tags         Editoras
// @Produce      json
// @Success      200 {object} dto.CountResponse
// @Router       /editoras/contar [get]
func (h *PublisherHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CountResponse{Quantidade: total})
}

// Filter 出版社过滤查询
// @Summary      出版社过滤查询
// @Tags         Editoras
// @Produce      json
// @Param        name query string false "名称（子串匹配）"
// @Param        address query string false "地址（子串匹配）"
// @Param        page query int false "页码" default(1)
// @Param        limit query int false "每页数量" default(10)
// @Success      200 {object} response.PageData{items=[]dto.PublisherResponse}
// @Router       /editoras/filtrar [get]
func (h *PublisherHandler) Filter(c *gin.Context) {
	var q dto.FilterPublishersQuery
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

	response.SuccessWithPage(c, dto.NewPublisherResponseList(page.Items), page.Total, page.Page, page.Limit)
}

// Update 出版社部分更新
// @Summary      出版社部分更新
// @Tags         Editoras
// @Accept       json
// @Produce      json
// @Param        id path int true "出版社ID"
// @Param        request body dto.UpdatePublisherRequest true "更新字段"
// @Success      200 {object} dto.PublisherResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /editoras/{id} [patch]
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BindError(err, "Dados inválidos"))
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewPublisherResponse(p))
}

// Delete 删除出版社
// @Summary      删除出版社
// @Description  名下仍有图书时返回400
// @Tags         Editoras
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Failure      400 {object} response.ErrorBody "存在图书依赖"
// @Router       /editoras/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Editora deletada com sucesso")
}
