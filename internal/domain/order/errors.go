package order

import (
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "Pedido não encontrado")

	// ErrHasDependencies 订单存在依赖（支付记录），删除被阻止
	// 策略声明：Payment→Order禁止级联删除，必须先删除支付记录
	ErrHasDependencies = apperrors.New(apperrors.ErrCodeDependencyConflict, "Não é possível deletar pedido com dependências")

	// ErrInvalidData 底层约束冲突（如非法外键）
	ErrInvalidData = apperrors.New(apperrors.ErrCodeConstraintViolation, "Dados inválidos para criar pedido")
)
