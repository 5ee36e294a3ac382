package mysql

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/livraria/internal/domain/listing"
)

// 查询翻译器：把listing的过滤/分页描述翻译成SQL
//
// 规则（全部资源统一）：
// 1. 条件之间为AND：每个条件逐步收窄候选集
// 2. 子串匹配大小写不敏感（LOWER(col) LIKE %v%）
// 3. 区间条件为闭区间（>= / <=）
// 4. 日期精确匹配翻译为[当天零点, 次日零点)的半开区间，
//    避免依赖具体驱动的DATE()函数
// 5. 分页前先计数：total与分页无关；结果按主键升序稳定排序

// applyFilters 把过滤条件逐个追加到查询上
// Field由各use case从白名单列名中选取，不直接拼接外部输入
func applyFilters(db *gorm.DB, filters []listing.Filter) *gorm.DB {
	for _, f := range filters {
		switch f.Op {
		case listing.OpEq:
			db = db.Where(fmt.Sprintf("%s = ?", f.Field), f.Value)
		case listing.OpContains:
			pattern := "%" + strings.ToLower(fmt.Sprintf("%v", f.Value)) + "%"
			db = db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", f.Field), pattern)
		case listing.OpGte:
			db = db.Where(fmt.Sprintf("%s >= ?", f.Field), f.Value)
		case listing.OpLte:
			db = db.Where(fmt.Sprintf("%s <= ?", f.Field), f.Value)
		case listing.OpDateEq:
			day := f.Value.(time.Time)
			start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
			db = db.Where(fmt.Sprintf("%s >= ? AND %s < ?", f.Field, f.Field),
				start, start.Add(24*time.Hour))
		}
	}
	return db
}

// applyPage 追加稳定排序和偏移分页
func applyPage(db *gorm.DB, q listing.Query) *gorm.DB {
	return db.Order("id ASC").Limit(q.Limit).Offset(q.Offset())
}
