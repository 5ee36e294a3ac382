package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// 目录实体仓储：泛型CRUD + 各实体的模型转换函数

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) catalog.Repository[catalog.Author] {
	return &crudRepository[AuthorModel, catalog.Author]{
		db:       db,
		notFound: catalog.ErrAuthorNotFound,
		toModel: func(a *catalog.Author) *AuthorModel {
			return &AuthorModel{
				ID:          a.ID,
				Name:        a.Name,
				Email:       a.Email,
				BirthDate:   a.BirthDate,
				Nationality: a.Nationality,
				Biography:   a.Biography,
			}
		},
		toEntity: func(m *AuthorModel) *catalog.Author {
			return &catalog.Author{
				ID:          m.ID,
				Name:        m.Name,
				Email:       m.Email,
				BirthDate:   m.BirthDate,
				Nationality: m.Nationality,
				Biography:   m.Biography,
			}
		},
	}
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) catalog.Repository[catalog.Publisher] {
	return &crudRepository[PublisherModel, catalog.Publisher]{
		db:       db,
		notFound: catalog.ErrPublisherNotFound,
		toModel: func(p *catalog.Publisher) *PublisherModel {
			return &PublisherModel{
				ID:      p.ID,
				Name:    p.Name,
				Address: p.Address,
				Phone:   p.Phone,
				Email:   p.Email,
			}
		},
		toEntity: func(m *PublisherModel) *catalog.Publisher {
			return &catalog.Publisher{
				ID:      m.ID,
				Name:    m.Name,
				Address: m.Address,
				Phone:   m.Phone,
				Email:   m.Email,
			}
		},
	}
}

// NewCustomerRepository 创建用户仓储
// CPF唯一索引冲突转换为专门的业务错误
func NewCustomerRepository(db *gorm.DB) catalog.Repository[catalog.Customer] {
	return &crudRepository[CustomerModel, catalog.Customer]{
		db:        db,
		notFound:  catalog.ErrCustomerNotFound,
		duplicate: catalog.ErrTaxIDDuplicate,
		toModel: func(c *catalog.Customer) *CustomerModel {
			return &CustomerModel{
				ID:               c.ID,
				Name:             c.Name,
				Email:            c.Email,
				TaxID:            c.TaxID,
				RegistrationDate: c.RegistrationDate,
			}
		},
		toEntity: func(m *CustomerModel) *catalog.Customer {
			return &catalog.Customer{
				ID:               m.ID,
				Name:             m.Name,
				Email:            m.Email,
				TaxID:            m.TaxID,
				RegistrationDate: m.RegistrationDate,
			}
		},
	}
}

// BookRepository 图书仓储：泛型CRUD + 订单协作用的查找方法
type BookRepository interface {
	catalog.Repository[catalog.Book]
	catalog.BookLookup
}

type bookRepository struct {
	crudRepository[BookModel, catalog.Book]
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{
		crudRepository: crudRepository[BookModel, catalog.Book]{
			db:       db,
			notFound: catalog.ErrBookNotFound,
			toModel: func(b *catalog.Book) *BookModel {
				return &BookModel{
					ID:          b.ID,
					Title:       b.Title,
					Price:       b.Price,
					Genre:       b.Genre,
					AuthorID:    b.AuthorID,
					PublisherID: b.PublisherID,
				}
			},
			toEntity: func(m *BookModel) *catalog.Book {
				return &catalog.Book{
					ID:          m.ID,
					Title:       m.Title,
					Price:       m.Price,
					Genre:       m.Genre,
					AuthorID:    m.AuthorID,
					PublisherID: m.PublisherID,
				}
			},
		},
	}
}

// ExistingIDs 返回ids中真实存在的图书ID集合
// 订单创建前的引用校验用：一次IN查询代替逐ID查找
func (r *bookRepository) ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []uint
	db := dbFromContext(ctx, r.db)
	err := db.Model(&BookModel{}).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Erro ao verificar livros")
	}

	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// PricesByID 返回ids对应的图书单价（分），对账用
func (r *bookRepository) PricesByID(ctx context.Context, ids []uint) (map[uint]int64, error) {
	prices := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	var rows []BookModel
	db := dbFromContext(ctx, r.db)
	err := db.Select("id", "price").Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Erro ao buscar preços")
	}

	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}
