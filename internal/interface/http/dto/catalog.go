package dto

import (
	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/domain/listing"
)

// =========================================
// 作者（/autores）
// =========================================

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	Name        string  `json:"name" binding:"required,max=100" example:"Machado de Assis"`
	Email       string  `json:"email" binding:"required,email,max=100" example:"machado@exemplo.com"`
	BirthDate   string  `json:"birth_date" binding:"required" example:"1839-06-21"`
	Nationality string  `json:"nationality" binding:"required,max=50" example:"Brasileira"`
	Biography   *string `json:"biography"`
}

// ToEntity 转换为领域实体（含日期解析）
func (r *CreateAuthorRequest) ToEntity() (*catalog.Author, error) {
	birth, err := ParseDate("birth_date", r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &catalog.Author{
		Name:        r.Name,
		Email:       r.Email,
		BirthDate:   birth,
		Nationality: r.Nationality,
		Biography:   r.Biography,
	}, nil
}

// UpdateAuthorRequest 部分更新请求：缺省字段保持原值
type UpdateAuthorRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	BirthDate   *string `json:"birth_date"`
	Nationality *string `json:"nationality" binding:"omitempty,max=50"`
	Biography   *string `json:"biography"`
}

// ToFields 转换为列名→值的更新映射
func (r *UpdateAuthorRequest) ToFields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.BirthDate != nil {
		birth, err := ParseDate("birth_date", *r.BirthDate)
		if err != nil {
			return nil, err
		}
		fields["birth_date"] = birth
	}
	if r.Nationality != nil {
		fields["nationality"] = *r.Nationality
	}
	if r.Biography != nil {
		fields["biography"] = *r.Biography
	}
	return fields, nil
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Machado de Assis"`
	Email       string  `json:"email" example:"machado@exemplo.com"`
	BirthDate   string  `json:"birth_date" example:"1839-06-21"`
	Nationality string  `json:"nationality" example:"Brasileira"`
	Biography   *string `json:"biography,omitempty"`
}

// NewAuthorResponse 领域实体 → 响应DTO
func NewAuthorResponse(a *catalog.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		BirthDate:   FormatDate(a.BirthDate),
		Nationality: a.Nationality,
		Biography:   a.Biography,
	}
}

// NewAuthorResponseList 批量转换
func NewAuthorResponseList(authors []*catalog.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = NewAuthorResponse(a)
	}
	return out
}

// FilterAuthorsQuery 过滤查询参数（/autores/filtrar）
type FilterAuthorsQuery struct {
	PageQuery
	Name        string `form:"name"`
	Email       string `form:"email"`
	Nationality string `form:"nationality"`
	BirthDate   string `form:"birth_date"`
}

// Filters 构建过滤条件
func (q *FilterAuthorsQuery) Filters() ([]listing.Filter, error) {
	var filters []listing.Filter
	if q.Name != "" {
		filters = append(filters, listing.Contains("name", q.Name))
	}
	if q.Email != "" {
		filters = append(filters, listing.Contains("email", q.Email))
	}
	if q.Nationality != "" {
		filters = append(filters, listing.Contains("nationality", q.Nationality))
	}
	if q.BirthDate != "" {
		day, err := ParseDate("birth_date", q.BirthDate)
		if err != nil {
			return nil, err
		}
		filters = append(filters, listing.DateEq("birth_date", day))
	}
	return filters, nil
}

// =========================================
// 出版社（/editoras）
// =========================================

// CreatePublisherRequest 创建出版社请求
type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"Companhia das Letras"`
	Address string `json:"address" binding:"required,max=200" example:"Rua Bandeira Paulista, 702"`
	Phone   string `json:"phone" binding:"required,max=30" example:"+55 11 3707-3500"`
	Email   string `json:"email" binding:"required,email,max=100" example:"contato@companhia.com.br"`
}

// ToEntity 转换为领域实体
func (r *CreatePublisherRequest) ToEntity() *catalog.Publisher {
	return &catalog.Publisher{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

// UpdatePublisherRequest 部分更新请求
type UpdatePublisherRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Email   *string `json:"email" binding:"omitempty,email,max=100"`
}

// ToFields 转换为更新映射
func (r *UpdatePublisherRequest) ToFields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	return fields
}

// PublisherResponse 出版社响应
type PublisherResponse struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"name" example:"Companhia das Letras"`
	Address string `json:"address" example:"Rua Bandeira Paulista, 702"`
	Phone   string `json:"phone" example:"+55 11 3707-3500"`
	Email   string `json:"email" example:"contato@companhia.com.br"`
}

// NewPublisherResponse 领域实体 → 响应DTO
func NewPublisherResponse(p *catalog.Publisher) *PublisherResponse {
	return &PublisherResponse{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
	}
}

// NewPublisherResponseList 批量转换
func NewPublisherResponseList(publishers []*catalog.Publisher) []*PublisherResponse {
	out := make([]*PublisherResponse, len(publishers))
	for i, p := range publishers {
		out[i] = NewPublisherResponse(p)
	}
	return out
}

// FilterPublishersQuery 过滤查询参数（/editoras/filtrar）
type FilterPublishersQuery struct {
	PageQuery
	Name    string `form:"name"`
	Address string `form:"address"`
}

// Filters 构建过滤条件
func (q *FilterPublishersQuery) Filters() []listing.Filter {
	var filters []listing.Filter
	if q.Name != "" {
		filters = append(filters, listing.Contains("name", q.Name))
	}
	if q.Address != "" {
		filters = append(filters, listing.Contains("address", q.Address))
	}
	return filters
}

// =========================================
// 图书（/livros）
// =========================================

// CreateBookRequest 创建图书请求
// price单位为分；author_id/publisher_id可空，给出时校验引用
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"Dom Casmurro"`
	Price       int64  `json:"price" binding:"min=0" example:"4990"`
	Genre       string `json:"genre" binding:"required,max=50" example:"Romance"`
	AuthorID    *uint  `json:"author_id" example:"1"`
	PublisherID *uint  `json:"publisher_id" example:"1"`
}

// ToEntity 转换为领域实体
func (r *CreateBookRequest) ToEntity() *catalog.Book {
	return &catalog.Book{
		Title:       r.Title,
		Price:       r.Price,
		Genre:       r.Genre,
		AuthorID:    r.AuthorID,
		PublisherID: r.PublisherID,
	}
}

// UpdateBookRequest 部分更新请求
type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Price       *int64  `json:"price"`
	Genre       *string `json:"genre" binding:"omitempty,max=50"`
	AuthorID    *uint   `json:"author_id"`
	PublisherID *uint   `json:"publisher_id"`
}

// ToFields 转换为更新映射
func (r *UpdateBookRequest) ToFields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Genre != nil {
		fields["genre"] = *r.Genre
	}
	if r.AuthorID != nil {
		fields["author_id"] = *r.AuthorID
	}
	if r.PublisherID != nil {
		fields["publisher_id"] = *r.PublisherID
	}
	return fields
}

// BookResponse 图书响应
type BookResponse struct {
	ID          uint   `json:"id" example:"1"`
	Title       string `json:"title" example:"Dom Casmurro"`
	Price       int64  `json:"price" example:"4990"`
	Genre       string `json:"genre" example:"Romance"`
	AuthorID    *uint  `json:"author_id,omitempty" example:"1"`
	PublisherID *uint  `json:"publisher_id,omitempty" example:"1"`
}

// NewBookResponse 领域实体 → 响应DTO
func NewBookResponse(b *catalog.Book) *BookResponse {
	return &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Price:       b.Price,
		Genre:       b.Genre,
		AuthorID:    b.AuthorID,
		PublisherID: b.PublisherID,
	}
}

// NewBookResponseList 批量转换
func NewBookResponseList(books []*catalog.Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b)
	}
	return out
}

// FilterBooksQuery 过滤查询参数（/livros/filtrar）
type FilterBooksQuery struct {
	PageQuery
	Title       string `form:"title"`
	Genre       string `form:"genre"`
	AuthorID    *uint  `form:"author_id"`
	PublisherID *uint  `form:"publisher_id"`
	PriceMin    *int64 `form:"price_min"`
	PriceMax    *int64 `form:"price_max"`
}

// Filters 构建过滤条件
func (q *FilterBooksQuery) Filters() []listing.Filter {
	var filters []listing.Filter
	if q.Title != "" {
		filters = append(filters, listing.Contains("title", q.Title))
	}
	if q.Genre != "" {
		filters = append(filters, listing.Contains("genre", q.Genre))
	}
	if q.AuthorID != nil {
		filters = append(filters, listing.Eq("author_id", *q.AuthorID))
	}
	if q.PublisherID != nil {
		filters = append(filters, listing.Eq("publisher_id", *q.PublisherID))
	}
	if q.PriceMin != nil {
		filters = append(filters, listing.Gte("price", *q.PriceMin))
	}
	if q.PriceMax != nil {
		filters = append(filters, listing.Lte("price", *q.PriceMax))
	}
	return filters
}

// =========================================
// 用户（/usuarios）
// =========================================

// CreateCustomerRequest 创建用户请求
// tax_id（CPF）全局唯一
type CreateCustomerRequest struct {
	Name             string `json:"name" binding:"required,max=100" example:"Maria Silva"`
	Email            string `json:"email" binding:"required,email,max=100" example:"maria@exemplo.com"`
	TaxID            string `json:"tax_id" binding:"required,max=20" example:"123.456.789-00"`
	RegistrationDate string `json:"registration_date" binding:"required" example:"2026-01-15"`
}

// ToEntity 转换为领域实体
func (r *CreateCustomerRequest) ToEntity() (*catalog.Customer, error) {
	reg, err := ParseDate("registration_date", r.RegistrationDate)
	if err != nil {
		return nil, err
	}
	return &catalog.Customer{
		Name:             r.Name,
		Email:            r.Email,
		TaxID:            r.TaxID,
		RegistrationDate: reg,
	}, nil
}

// UpdateCustomerRequest 部分更新请求
type UpdateCustomerRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=100"`
	Email            *string `json:"email" binding:"omitempty,email,max=100"`
	TaxID            *string `json:"tax_id" binding:"omitempty,max=20"`
	RegistrationDate *string `json:"registration_date"`
}

// ToFields 转换为更新映射
func (r *UpdateCustomerRequest) ToFields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.TaxID != nil {
		fields["tax_id"] = *r.TaxID
	}
	if r.RegistrationDate != nil {
		reg, err := ParseDate("registration_date", *r.RegistrationDate)
		if err != nil {
			return nil, err
		}
		fields["registration_date"] = reg
	}
	return fields, nil
}

// CustomerResponse 用户响应
type CustomerResponse struct {
	ID               uint   `json:"id" example:"1"`
	Name             string `json:"name" example:"Maria Silva"`
	Email            string `json:"email" example:"maria@exemplo.com"`
	TaxID            string `json:"tax_id" example:"123.456.789-00"`
	RegistrationDate string `json:"registration_date" example:"2026-01-15"`
}

// NewCustomerResponse 领域实体 → 响应DTO
func NewCustomerResponse(c *catalog.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		TaxID:            c.TaxID,
		RegistrationDate: FormatDate(c.RegistrationDate),
	}
}

// NewCustomerResponseList 批量转换
func NewCustomerResponseList(customers []*catalog.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = NewCustomerResponse(c)
	}
	return out
}

// FilterCustomersQuery 过滤查询参数（/usuarios/filtrar）
type FilterCustomersQuery struct {
	PageQuery
	Name             string `form:"name"`
	Email            string `form:"email"`
	TaxID            string `form:"tax_id"`
	RegistrationDate string `form:"registration_date"`
}

// Filters 构建过滤条件（tax_id为精确匹配）
func (q *FilterCustomersQuery) Filters() ([]listing.Filter, error) {
	var filters []listing.Filter
	if q.Name != "" {
		filters = append(filters, listing.Contains("name", q.Name))
	}
	if q.Email != "" {
		filters = append(filters, listing.Contains("email", q.Email))
	}
	if q.TaxID != "" {
		filters = append(filters, listing.Eq("tax_id", q.TaxID))
	}
	if q.RegistrationDate != "" {
		day, err := ParseDate("registration_date", q.RegistrationDate)
		if err != nil {
			return nil, err
		}
		filters = append(filters, listing.DateEq("registration_date", day))
	}
	return filters, nil
}
