package payment

import (
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// 支付子域错误定义
var (
	// ErrPaymentNotFound 支付记录不存在
	ErrPaymentNotFound = apperrors.New(apperrors.ErrCodePaymentNotFound, "Pagamento não encontrado")

	// ErrOrderAlreadyPaid 订单已有支付记录（order_id唯一索引冲突）
	ErrOrderAlreadyPaid = apperrors.New(apperrors.ErrCodeConstraintViolation, "Pedido já possui pagamento")
)
