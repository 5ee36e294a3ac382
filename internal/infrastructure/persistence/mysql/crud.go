package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// crudRepository 泛型CRUD仓储
//
// 设计说明：
// 目录实体（作者/出版社/图书/用户）的数据访问逻辑完全同构，
// 这里用一个类型参数化实现替代逐实体复制的仓储代码：
// M是GORM模型，E是领域实体，转换函数由各实体的构造器注入。
// 实现catalog.Repository[E]接口。
type crudRepository[M any, E any] struct {
	db        *gorm.DB
	toModel   func(*E) *M
	toEntity  func(*M) *E
	notFound  *apperrors.AppError // 实体级NotFound错误
	duplicate *apperrors.AppError // 唯一索引冲突错误（可为nil，回落到通用错误）
}

// Create 插入记录并回填自增ID
func (r *crudRepository[M, E]) Create(ctx context.Context, entity *E) error {
	model := r.toModel(entity)
	db := dbFromContext(ctx, r.db)

	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			if r.duplicate != nil {
				return r.duplicate
			}
			return apperrors.ErrConstraintViolation
		}
		if isFKViolation(err) {
			return apperrors.ErrConstraintViolation
		}
		return apperrors.Wrap(err, "Erro ao criar registro")
	}

	// 回填数据库生成的字段
	*entity = *r.toEntity(model)
	return nil
}

// FindByID 按主键查找
func (r *crudRepository[M, E]) FindByID(ctx context.Context, id uint) (*E, error) {
	var model M
	db := dbFromContext(ctx, r.db)

	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}
		return nil, apperrors.Wrap(err, "Erro ao buscar registro")
	}

	return r.toEntity(&model), nil
}

// UpdateFields 部分更新：只写入给出的列
// 先做存在性检查：Updates的RowsAffected在值未变化时也可能为0，
// 不能用它区分"不存在"和"无变化"
func (r *crudRepository[M, E]) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	db := dbFromContext(ctx, r.db)

	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return r.notFound
	}

	if len(fields) == 0 {
		return nil
	}

	err = db.Model(new(M)).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		if isDuplicateError(err) {
			if r.duplicate != nil {
				return r.duplicate
			}
			return apperrors.ErrConstraintViolation
		}
		if isFKViolation(err) {
			return apperrors.ErrConstraintViolation
		}
		return apperrors.Wrap(err, "Erro ao atualizar registro")
	}
	return nil
}

// Delete 按主键删除
// 被外键引用（如作者仍有图书）时返回DependencyConflict
func (r *crudRepository[M, E]) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	result := db.Delete(new(M), id)
	if result.Error != nil {
		if isFKViolation(result.Error) {
			return apperrors.ErrDependencyConflict
		}
		return apperrors.Wrap(result.Error, "Erro ao deletar registro")
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

// List 过滤+分页查询
func (r *crudRepository[M, E]) List(ctx context.Context, q listing.Query) (listing.Page[*E], error) {
	page := listing.Page[*E]{Page: q.Page, Limit: q.Limit, Items: []*E{}}
	db := dbFromContext(ctx, r.db)

	query := applyFilters(db.Model(new(M)), q.Filters)
	if err := query.Count(&page.Total).Error; err != nil {
		return page, apperrors.Wrap(err, "Erro ao contar registros")
	}

	var models []M
	if err := applyPage(query, q).Find(&models).Error; err != nil {
		return page, apperrors.Wrap(err, "Erro ao listar registros")
	}

	for i := range models {
		page.Items = append(page.Items, r.toEntity(&models[i]))
	}
	return page, nil
}

// Count 满足过滤条件的记录总数
func (r *crudRepository[M, E]) Count(ctx context.Context, filters ...listing.Filter) (int64, error) {
	var total int64
	db := dbFromContext(ctx, r.db)

	err := applyFilters(db.Model(new(M)), filters).Count(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "Erro ao contar registros")
	}
	return total, nil
}

// Exists 主键存在性检查
func (r *crudRepository[M, E]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	db := dbFromContext(ctx, r.db)

	err := db.Model(new(M)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "Erro ao verificar registro")
	}
	return count > 0, nil
}

// 接口实现检查
var _ catalog.Repository[catalog.Author] = (*crudRepository[AuthorModel, catalog.Author])(nil)
