package mysql

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
)

// TestAuthorRepository_CreateAndFind 创建回填ID，读回字段一致
func TestAuthorRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	bio := "Escritor brasileiro"
	a := &catalog.Author{
		Name:        "Machado de Assis",
		Email:       "machado@exemplo.com",
		BirthDate:   day(1839, 6, 21),
		Nationality: "Brasileira",
		Biography:   &bio,
	}

	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID)

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Machado de Assis", found.Name)
	assert.True(t, found.BirthDate.Equal(day(1839, 6, 21)))
	require.NotNil(t, found.Biography)
	assert.Equal(t, bio, *found.Biography)
}

// TestAuthorRepository_NotFound 不存在的主键返回实体级NotFound错误
func TestAuthorRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	err = repo.UpdateFields(context.Background(), 999, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	err = repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
}

// TestAuthorRepository_PartialUpdate 只更新给出的列，其余保持原值
func TestAuthorRepository_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	a := &catalog.Author{
		Name:        "Clarice Lispector",
		Email:       "clarice@exemplo.com",
		BirthDate:   day(1920, 12, 10),
		Nationality: "Brasileira",
	}
	require.NoError(t, repo.Create(ctx, a))

	err := repo.UpdateFields(ctx, a.ID, map[string]interface{}{"email": "novo@exemplo.com"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "novo@exemplo.com", found.Email)
	assert.Equal(t, "Clarice Lispector", found.Name)
	assert.True(t, found.BirthDate.Equal(day(1920, 12, 10)))
}

// TestCustomerRepository_DuplicateTaxID CPF唯一索引冲突转换为业务错误
func TestCustomerRepository_DuplicateTaxID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c1 := &catalog.Customer{Name: "A", Email: "a@x.com", TaxID: "111.222.333-44", RegistrationDate: day(2026, 1, 1)}
	require.NoError(t, repo.Create(ctx, c1))

	c2 := &catalog.Customer{Name: "B", Email: "b@x.com", TaxID: "111.222.333-44", RegistrationDate: day(2026, 1, 2)}
	err := repo.Create(ctx, c2)
	assert.ErrorIs(t, err, catalog.ErrTaxIDDuplicate)
}

// TestCrudRepository_PaginationLaw 页长限制：len(items) <= limit，total与分页无关
func TestCrudRepository_PaginationLaw(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		a := &catalog.Author{
			Name:        fmt.Sprintf("Autor %02d", i),
			Email:       fmt.Sprintf("autor%02d@x.com", i),
			BirthDate:   day(1950, 1, 1),
			Nationality: "Brasileira",
		}
		require.NoError(t, repo.Create(ctx, a))
	}

	page1, err := repo.List(ctx, listing.NewQuery(1, 10))
	require.NoError(t, err)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, int64(25), page1.Total)

	page3, err := repo.List(ctx, listing.NewQuery(3, 10))
	require.NoError(t, err)
	assert.Len(t, page3.Items, 5)
	assert.Equal(t, int64(25), page3.Total)

	// 超出范围的页：空页而非错误
	page4, err := repo.List(ctx, listing.NewQuery(4, 10))
	require.NoError(t, err)
	assert.Empty(t, page4.Items)
	assert.Equal(t, int64(25), page4.Total)

	// 稳定排序：相邻页不重叠
	assert.NotEqual(t, page1.Items[0].ID, page3.Items[0].ID)
}

// TestCrudRepository_FilterConjunction 多个条件为AND关系
func TestCrudRepository_FilterConjunction(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	seed := []catalog.Author{
		{Name: "Jorge Amado", Email: "jorge@x.com", BirthDate: day(1912, 8, 10), Nationality: "Brasileira"},
		{Name: "Jorge Luis Borges", Email: "borges@x.com", BirthDate: day(1899, 8, 24), Nationality: "Argentina"},
		{Name: "Cecília Meireles", Email: "cecilia@x.com", BirthDate: day(1901, 11, 7), Nationality: "Brasileira"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	// 子串匹配大小写不敏感
	page, err := repo.List(ctx, listing.NewQuery(1, 10, listing.Contains("name", "jorge")))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	// AND收窄
	page, err = repo.List(ctx, listing.NewQuery(1, 10,
		listing.Contains("name", "jorge"),
		listing.Contains("nationality", "brasileira"),
	))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Jorge Amado", page.Items[0].Name)

	// 日期精确匹配（按天）
	page, err = repo.List(ctx, listing.NewQuery(1, 10, listing.DateEq("birth_date", day(1912, 8, 10))))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Jorge Amado", page.Items[0].Name)

	// 零匹配：空页+total=0，不是错误
	page, err = repo.List(ctx, listing.NewQuery(1, 10, listing.Contains("name", "inexistente")))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)

	total, err := repo.Count(ctx, listing.Contains("nationality", "brasileira"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

// TestAuthorRepository_DeleteBlockedByBook 作者名下有图书时删除被外键阻止
func TestAuthorRepository_DeleteBlockedByBook(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	a := &catalog.Author{Name: "Autor", Email: "a@x.com", BirthDate: day(1950, 1, 1), Nationality: "Brasileira"}
	require.NoError(t, repo.Create(ctx, a))

	authorID := a.ID
	book := &BookModel{Title: "Livro", Price: 1000, Genre: "Romance", AuthorID: &authorID}
	require.NoError(t, db.Create(book).Error)

	err := repo.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, apperrors.ErrDependencyConflict)

	// 作者仍然存在
	_, err = repo.FindByID(ctx, a.ID)
	assert.NoError(t, err)
}

// TestBookRepository_Lookups 订单协作用的批量查找
func TestBookRepository_Lookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	b1 := seedBook(t, db, "Livro A", 2500)
	b2 := seedBook(t, db, "Livro B", 3500)

	existing, err := repo.ExistingIDs(ctx, []uint{b1, b2, 999})
	require.NoError(t, err)
	assert.True(t, existing[b1])
	assert.True(t, existing[b2])
	assert.False(t, existing[999])

	prices, err := repo.PricesByID(ctx, []uint{b1, b2})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{b1: 2500, b2: 3500}, prices)

	// 空输入：空结果，不查库
	existing, err = repo.ExistingIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, existing)
}
