package dto

import (
	"time"

	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// 日期统一走AAAA-MM-DD（即YYYY-MM-DD）格式：
// 所有资源的日期字段在请求和响应里都使用这一种格式，
// 历史上混用的DD-MM-YYYY不再接受
const dateLayout = "2006-01-02"

// ParseDate 解析必填日期字段
// 格式错误返回字段级的400错误，绝不静默忽略
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.InvalidDate(field)
	}
	return t, nil
}

// ParseOptionalDate 解析可选日期字段；空串返回nil
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate 日期序列化
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// PageQuery 分页查询参数（全资源通用）
type PageQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1" example:"1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100" example:"10"`
}

// CountResponse 计数响应
type CountResponse struct {
	Quantidade int64 `json:"quantidade" example:"42"`
}
