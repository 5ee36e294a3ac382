package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 创建内存SQLite测试库
// 要点：
// 1. TranslateError开启后，唯一索引/外键错误与MySQL走同一套翻译逻辑
// 2. _foreign_keys=on：SQLite默认不执行外键约束，依赖删除测试需要打开
// 3. MaxOpenConns(1)：每个内存库绑定单个连接，避免连接池拿到空库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

// day 构造一个日历日（零点）
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// seedCustomer 插入一个用户，返回ID
func seedCustomer(t *testing.T, db *gorm.DB, taxID string) uint {
	t.Helper()
	m := &CustomerModel{
		Name:             "Maria Silva",
		Email:            "maria@exemplo.com",
		TaxID:            taxID,
		RegistrationDate: day(2026, 1, 15),
	}
	require.NoError(t, db.Create(m).Error)
	return m.ID
}

// seedBook 插入一本图书，返回ID
func seedBook(t *testing.T, db *gorm.DB, title string, price int64) uint {
	t.Helper()
	m := &BookModel{Title: title, Price: price, Genre: "Romance"}
	require.NoError(t, db.Create(m).Error)
	return m.ID
}

// seedOrder 插入一个订单头（不含关联行），返回ID
func seedOrder(t *testing.T, db *gorm.DB, customerID *uint, total int64) uint {
	t.Helper()
	m := &OrderModel{
		CustomerID: customerID,
		OrderDate:  day(2026, 8, 28),
		Status:     "pendente",
		TotalValue: total,
	}
	require.NoError(t, db.Create(m).Error)
	return m.ID
}
