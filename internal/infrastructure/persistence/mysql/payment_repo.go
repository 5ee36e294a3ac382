package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/livraria/internal/domain/payment"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// paymentRepository 支付仓储实现
// 在通用CRUD之外单独实现，因为：
// 1. Create需要把唯一索引冲突翻译为ErrOrderAlreadyPaid（业务语义）
// 2. FindByOrderID按外键查找，不在通用接口里
type paymentRepository struct {
	crudRepository[PaymentModel, payment.Payment]
}

// NewPaymentRepository 创建支付仓储
func NewPaymentRepository(db *gorm.DB) payment.Repository {
	return &paymentRepository{
		crudRepository: crudRepository[PaymentModel, payment.Payment]{
			db: db,
			toModel: func(e *payment.Payment) *PaymentModel {
				return &PaymentModel{
					ID:            e.ID,
					OrderID:       e.OrderID,
					PaymentDate:   e.PaymentDate,
					Amount:        e.Amount,
					PaymentMethod: e.PaymentMethod,
				}
			},
			toEntity: func(m *PaymentModel) *payment.Payment {
				return &payment.Payment{
					ID:            m.ID,
					OrderID:       m.OrderID,
					PaymentDate:   m.PaymentDate,
					Amount:        m.Amount,
					PaymentMethod: m.PaymentMethod,
				}
			},
			notFound:  payment.ErrPaymentNotFound,
			duplicate: payment.ErrOrderAlreadyPaid,
		},
	}
}

// FindByOrderID 按订单ID查找支付记录
// 不存在时返回(nil, nil)，由调用方决定是否算错误
func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID uint) (*payment.Payment, error) {
	var model PaymentModel
	db := dbFromContext(ctx, r.db)

	err := db.Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "Erro ao buscar pagamento")
	}

	return r.toEntity(&model), nil
}

var _ payment.Repository = (*paymentRepository)(nil)
