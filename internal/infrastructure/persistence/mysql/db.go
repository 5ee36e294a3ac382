package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/livraria/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. TranslateError开启后，驱动层错误被翻译为gorm.ErrDuplicatedKey/
//    gorm.ErrForeignKeyViolated等统一错误，仓储层据此转换为业务错误
// 3. 连接池参数（MaxOpenConns等）从配置读取；连接池进程内共享，
//    单个请求不跨请求持有连接
// 4. 开发环境打印SQL，生产环境关闭
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 迁移全部表结构（测试环境用sqlite时也复用）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&PublisherModel{},
		&BookModel{},
		&CustomerModel{},
		&OrderModel{},
		&OrderBookModel{},
		&PaymentModel{},
	)
}

// =========================================
// GORM模型定义
// =========================================
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag；
//    domain层的实体不依赖GORM，仓储负责两者之间的转换
// 2. 金额统一以int64存储分（centavo），避免浮点精度问题
// 3. 日期字段只取日历日（写入前截断到当天零点）
// 4. 级联策略在这里显式声明：
//    - order_books归订单所有：ON DELETE CASCADE
//    - payments/books/orders对上游的引用：ON DELETE RESTRICT
//      （存在依赖时删除被阻止，转换为DependencyConflict错误）

// AuthorModel 作者表
type AuthorModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:100;not null"`
	BirthDate   time.Time `gorm:"not null"`
	Nationality string    `gorm:"size:50;not null"`
	Biography   *string   `gorm:"type:text"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// PublisherModel 出版社表
type PublisherModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null"`
	Address string `gorm:"size:200;not null"`
	Phone   string `gorm:"size:30;not null"`
	Email   string `gorm:"size:100;not null"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// BookModel 图书表
// AuthorID/PublisherID为可空外键（RESTRICT：作者/出版社有图书时不可删除）
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"size:200;not null;index"`
	Price       int64           `gorm:"not null"`
	Genre       string          `gorm:"size:50;not null"`
	AuthorID    *uint           `gorm:"index"`
	PublisherID *uint           `gorm:"index"`
	Author      *AuthorModel    `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Publisher   *PublisherModel `gorm:"foreignKey:PublisherID;constraint:OnDelete:RESTRICT"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CustomerModel 用户表
// TaxID（CPF）唯一索引
type CustomerModel struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"size:100;not null"`
	Email            string    `gorm:"size:100;not null"`
	TaxID            string    `gorm:"column:tax_id;uniqueIndex;size:20;not null"`
	RegistrationDate time.Time `gorm:"not null"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// OrderModel 订单表
// 要点：
// 1. Links是归属于订单的关联行（随订单创建/删除，CASCADE）
// 2. Payment是1:1读投影（payments.order_id唯一索引，RESTRICT阻止订单删除）
// 3. Customer是belongs-to读投影（用户有订单时不可删除）
type OrderModel struct {
	ID         uint             `gorm:"primaryKey"`
	CustomerID *uint            `gorm:"index"`
	OrderDate  time.Time        `gorm:"not null;index"`
	Status     string           `gorm:"size:50;not null"`
	TotalValue int64            `gorm:"not null"`
	Customer   *CustomerModel   `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Links      []OrderBookModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment    *PaymentModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderBookModel 订单-图书关联表（复合主键，无独立生命周期）
type OrderBookModel struct {
	OrderID uint       `gorm:"primaryKey;autoIncrement:false"`
	BookID  uint       `gorm:"primaryKey;autoIncrement:false"`
	Book    *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
}

// TableName 指定表名
func (OrderBookModel) TableName() string {
	return "order_books"
}

// PaymentModel 支付表
// OrderID唯一索引：数据库层强制一个订单至多一笔支付
type PaymentModel struct {
	ID            uint      `gorm:"primaryKey"`
	OrderID       uint      `gorm:"uniqueIndex;not null"`
	PaymentDate   time.Time `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"size:50;not null"`
}

// TableName 指定表名
func (PaymentModel) TableName() string {
	return "payments"
}
