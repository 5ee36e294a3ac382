package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNewQuery_Defaults 非法页码/页大小回落到默认值
func TestNewQuery_Defaults(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"零值", 0, 0, DefaultPage, DefaultLimit},
		{"负值", -3, -1, DefaultPage, DefaultLimit},
		{"合法值保留", 4, 25, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewQuery(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, q.Page)
			assert.Equal(t, tc.wantLimit, q.Limit)
		})
	}
}

// TestQuery_Offset offset = (page-1)*limit
func TestQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, NewQuery(1, 10).Offset())
	assert.Equal(t, 10, NewQuery(2, 10).Offset())
	assert.Equal(t, 50, NewQuery(3, 25).Offset())
}

// TestFilterConstructors 构造函数产出正确的操作符
func TestFilterConstructors(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Filter{Field: "customer_id", Op: OpEq, Value: uint(1)}, Eq("customer_id", uint(1)))
	assert.Equal(t, Filter{Field: "status", Op: OpContains, Value: "pend"}, Contains("status", "pend"))
	assert.Equal(t, Filter{Field: "total_value", Op: OpGte, Value: int64(100)}, Gte("total_value", int64(100)))
	assert.Equal(t, Filter{Field: "total_value", Op: OpLte, Value: int64(500)}, Lte("total_value", int64(500)))
	assert.Equal(t, Filter{Field: "order_date", Op: OpDateEq, Value: day}, DateEq("order_date", day))
}
