package catalog

import (
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// 目录子域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Autor não encontrado")

	// ErrPublisherNotFound 出版社不存在
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "Editora não encontrada")

	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Livro não encontrado")

	// ErrCustomerNotFound 用户不存在
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "Usuário não encontrado")

	// ErrTaxIDDuplicate CPF已被注册（customers.tax_id唯一索引）
	ErrTaxIDDuplicate = apperrors.New(apperrors.ErrCodeConstraintViolation, "CPF já cadastrado")

	// ErrNegativePrice 图书价格不能为负
	ErrNegativePrice = apperrors.New(apperrors.ErrCodeInvalidParams, "Preço não pode ser negativo")
)
