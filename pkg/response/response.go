package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// 统一响应工具
// 设计说明：
// 1. 成功响应直接返回业务JSON（不包一层envelope，与对外API契约一致）
// 2. 错误响应返回{code, message}，HTTP状态码由AppError推导（404/400/500）
// 3. 内部错误的细节只进日志，不出现在响应体中

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 仅返回确认消息（如删除成功）
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ErrorBody 错误响应体
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := useCase.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 把底层错误挂到gin.Context上，日志中间件统一记录
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	c.JSON(appErr.HTTPStatus(), ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
// page为1-based页码，total为过滤后的总记录数（与分页无关）
type PageData struct {
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
	Items interface{} `json:"items"`
}

// SuccessWithPage 分页成功响应
// 约定：零匹配时返回total=0和空items，不返回404
func SuccessWithPage(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, PageData{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: items,
	})
}
