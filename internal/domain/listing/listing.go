// Package listing 定义过滤/分页查询的值对象
//
// 设计说明：
// 1. 所有资源的列表/过滤/计数都走同一套查询描述（替代逐资源复制的查询代码）
// 2. 过滤条件之间为AND关系：给出的条件逐个收窄结果集，未给出的不施加约束
// 3. 翻译为SQL的工作在infrastructure层完成，domain层只描述意图
package listing

import "time"

// Op 过滤操作符
type Op int

const (
	// OpEq 精确匹配（ID、枚举）
	OpEq Op = iota
	// OpContains 大小写不敏感的子串匹配（名称、状态等文本字段）
	OpContains
	// OpGte 闭区间下界（价格/金额下限）
	OpGte
	// OpLte 闭区间上界（价格/金额上限）
	OpLte
	// OpDateEq 日历日期精确匹配（按天比较）
	OpDateEq
)

// Filter 单个过滤条件
// Field为数据库列名（由各资源的use case限定取值，不接受外部任意输入）
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Eq 构造精确匹配条件
func Eq(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// Contains 构造子串匹配条件
func Contains(field, value string) Filter {
	return Filter{Field: field, Op: OpContains, Value: value}
}

// Gte 构造下界条件
func Gte(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpGte, Value: value}
}

// Lte 构造上界条件
func Lte(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpLte, Value: value}
}

// DateEq 构造日期精确匹配条件
func DateEq(field string, day time.Time) Filter {
	return Filter{Field: field, Op: OpDateEq, Value: day}
}

// 分页默认值
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Query 过滤+分页查询描述
type Query struct {
	Filters []Filter
	Page    int // 1-based页码
	Limit   int // 每页大小
}

// NewQuery 创建查询，页码/页大小低于下限时回落到默认值
func NewQuery(page, limit int, filters ...Filter) Query {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Query{Filters: filters, Page: page, Limit: limit}
}

// Offset 计算偏移量：offset = (page-1)*limit
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page 一页过滤结果
// Total是满足过滤条件的全部记录数，与分页无关；
// 零匹配时返回Total=0和空Items（全局统一策略，不返回"未找到"）
type Page[T any] struct {
	Page  int
	Limit int
	Total int64
	Items []T
}
