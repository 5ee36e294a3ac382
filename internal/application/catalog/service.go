package catalog

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
)

// crudService 目录实体的通用应用服务
// 设计说明：
// 目录实体（作者/出版社/图书/用户）的用例形态完全一致，
// 与泛型仓储对应地用一个类型参数化的服务承载，
// 实体特有的校验在各自的包装服务里补充（见book.go）。
type crudService[E any] struct {
	repo catalog.Repository[E]
}

// Create 创建记录并回填ID
func (s *crudService[E]) Create(ctx context.Context, entity *E) (*E, error) {
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Get 按主键查找
func (s *crudService[E]) Get(ctx context.Context, id uint) (*E, error) {
	return s.repo.FindByID(ctx, id)
}

// Update 部分更新，返回更新后的完整记录
func (s *crudService[E]) Update(ctx context.Context, id uint, fields map[string]interface{}) (*E, error) {
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete 按主键删除
func (s *crudService[E]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// List 过滤+分页查询
func (s *crudService[E]) List(ctx context.Context, q listing.Query) (listing.Page[*E], error) {
	return s.repo.List(ctx, q)
}

// Count 满足过滤条件的记录总数
func (s *crudService[E]) Count(ctx context.Context, filters ...listing.Filter) (int64, error) {
	return s.repo.Count(ctx, filters...)
}

// AuthorService 作者应用服务
type AuthorService struct {
	crudService[catalog.Author]
}

// NewAuthorService 创建作者服务
func NewAuthorService(repo catalog.Repository[catalog.Author]) *AuthorService {
	return &AuthorService{crudService[catalog.Author]{repo: repo}}
}

// PublisherService 出版社应用服务
type PublisherService struct {
	crudService[catalog.Publisher]
}

// NewPublisherService 创建出版社服务
func NewPublisherService(repo catalog.Repository[catalog.Publisher]) *PublisherService {
	return &PublisherService{crudService[catalog.Publisher]{repo: repo}}
}

// CustomerService 用户应用服务
// CPF唯一性由仓储层翻译唯一索引冲突保证（ErrTaxIDDuplicate）
type CustomerService struct {
	crudService[catalog.Customer]
}

// NewCustomerService 创建用户服务
func NewCustomerService(repo catalog.Repository[catalog.Customer]) *CustomerService {
	return &CustomerService{crudService[catalog.Customer]{repo: repo}}
}
