package catalog

import (
	"context"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// BookService 图书应用服务
// 在通用CRUD之上补充：
// 1. 价格非负校验
// 2. author_id/publisher_id引用校验（可空外键，给出时必须存在）
type BookService struct {
	crudService[catalog.Book]
	authorRepo    catalog.Repository[catalog.Author]
	publisherRepo catalog.Repository[catalog.Publisher]
}

// NewBookService 创建图书服务
func NewBookService(
	repo catalog.Repository[catalog.Book],
	authorRepo catalog.Repository[catalog.Author],
	publisherRepo catalog.Repository[catalog.Publisher],
) *BookService {
	return &BookService{
		crudService:   crudService[catalog.Book]{repo: repo},
		authorRepo:    authorRepo,
		publisherRepo: publisherRepo,
	}
}

// Create 创建图书
func (s *BookService) Create(ctx context.Context, b *catalog.Book) (*catalog.Book, error) {
	if b.Price < 0 {
		return nil, catalog.ErrNegativePrice
	}
	if err := s.validateRefs(ctx, b.AuthorID, b.PublisherID); err != nil {
		return nil, err
	}
	return s.crudService.Create(ctx, b)
}

// Update 部分更新图书
func (s *BookService) Update(ctx context.Context, id uint, fields map[string]interface{}) (*catalog.Book, error) {
	if price, ok := fields["price"].(int64); ok && price < 0 {
		return nil, catalog.ErrNegativePrice
	}

	var authorID, publisherID *uint
	if v, ok := fields["author_id"].(uint); ok {
		authorID = &v
	}
	if v, ok := fields["publisher_id"].(uint); ok {
		publisherID = &v
	}
	if err := s.validateRefs(ctx, authorID, publisherID); err != nil {
		return nil, err
	}

	return s.crudService.Update(ctx, id, fields)
}

func (s *BookService) validateRefs(ctx context.Context, authorID, publisherID *uint) error {
	if authorID != nil {
		exists, err := s.authorRepo.Exists(ctx, *authorID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.InvalidReference("Autor", *authorID)
		}
	}
	if publisherID != nil {
		exists, err := s.publisherRepo.Exists(ctx, *publisherID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.InvalidReference("Editora", *publisherID)
		}
	}
	return nil
}
