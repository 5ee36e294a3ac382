// Package catalog 目录子域：作者、出版社、图书、用户
//
// 这些实体之间只有简单的引用关系，没有自己的一致性规则，
// 统一通过泛型仓储（Repository[E]）做CRUD和过滤查询；
// 订单聚合（domain/order）在创建时会校验对它们的引用。
package catalog

import "time"

// Author 作者实体
type Author struct {
	ID          uint
	Name        string
	Email       string
	BirthDate   time.Time // 按天存储，wire格式AAAA-MM-DD
	Nationality string
	Biography   *string // 可选简介
}

// Publisher 出版社实体
type Publisher struct {
	ID      uint
	Name    string
	Address string
	Phone   string
	Email   string
}

// Book 图书实体
// Price以分（centavo）存储，避免浮点精度问题
type Book struct {
	ID          uint
	Title       string
	Price       int64
	Genre       string
	AuthorID    *uint // 可空外键
	PublisherID *uint // 可空外键
}

// Customer 用户（下单客户）实体
// TaxID（CPF）全局唯一
type Customer struct {
	ID               uint
	Name             string
	Email            string
	TaxID            string
	RegistrationDate time.Time
}
