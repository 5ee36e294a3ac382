package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是面向用户的提示信息（本项目对外文案为葡萄牙语）
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）
//
// 错误分类对应关系：
// - NotFound            → 404xx（HTTP 404）
// - InvalidReference    → 40001（HTTP 400，引用的实体不存在）
// - InvalidInput        → 409xx（HTTP 400，参数/日期格式错误）
// - ConstraintViolation → 40009（HTTP 400，唯一约束/外键冲突）
// - DependencyConflict  → 40010（HTTP 400，存在依赖记录阻止删除）
// - Internal            → 5xxxx（HTTP 500）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 资源错误（40400-40499）
	ErrCodeNotFound          = 40400 // 资源不存在（通用）
	ErrCodeAuthorNotFound    = 40401 // 作者不存在
	ErrCodePublisherNotFound = 40402 // 出版社不存在
	ErrCodeBookNotFound      = 40403 // 图书不存在
	ErrCodeCustomerNotFound  = 40404 // 用户不存在
	ErrCodeOrderNotFound     = 40405 // 订单不存在
	ErrCodePaymentNotFound   = 40406 // 支付记录不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError       = 40000 // 业务错误（通用）
	ErrCodeInvalidReference    = 40001 // 引用的关联实体不存在
	ErrCodeConstraintViolation = 40009 // 唯一约束/外键冲突
	ErrCodeDependencyConflict  = 40010 // 存在依赖记录，删除被阻止

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeInvalidDate   = 40902 // 日期格式错误
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "Erro interno do servidor")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Erro de banco de dados")
	ErrRedisError    = New(ErrCodeRedisError, "Erro no serviço de cache")

	// 资源不存在
	ErrNotFound = New(ErrCodeNotFound, "Registro não encontrado")

	// 业务规则
	ErrConstraintViolation = New(ErrCodeConstraintViolation, "Dados inválidos: violação de restrição")
	ErrDependencyConflict  = New(ErrCodeDependencyConflict, "Não é possível deletar registro com dependências")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "Parâmetros inválidos")
	ErrBindError     = New(ErrCodeBindError, "Formato de requisição inválido")
)

// BindError 请求体/查询参数绑定失败（400）
// 底层校验错误挂在Err上只进日志，不暴露给客户端
func BindError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeBindError, Message: message, Err: err}
}

// InvalidDate 日期格式错误（字段级提示，统一使用AAAA-MM-DD格式）
func InvalidDate(field string) *AppError {
	return Newf(ErrCodeInvalidDate, "Formato de %s inválido (use AAAA-MM-DD)", field)
}

// InvalidReference 引用的关联实体不存在
// 例：创建订单时book_ids包含不存在的图书ID
func InvalidReference(entity string, id uint) *AppError {
	return Newf(ErrCodeInvalidReference, "%s com ID %d não encontrado", entity, id)
}

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Erro interno do servidor")
}

// HTTPStatus 根据业务错误码推导HTTP状态码
// 规则：404xx→404，5xxxx→500，其余4xxxx→400
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 40400 && e.Code < 40500:
		return 404
	case e.Code >= 50000:
		return 500
	default:
		return 400
	}
}
