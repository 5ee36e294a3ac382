package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNewOrder_DedupeBookIDs 重复的book_id去重且保持首次出现顺序
func TestNewOrder_DedupeBookIDs(t *testing.T) {
	o := NewOrder(nil, time.Now(), "pendente", 1000, []uint{3, 1, 3, 2, 1})

	assert.Equal(t, []uint{3, 1, 2}, o.BookIDs)
}

// TestNewOrder_EmptyBookIDs 空集合合法（订单可以不关联图书）
func TestNewOrder_EmptyBookIDs(t *testing.T) {
	o := NewOrder(nil, time.Now(), "pendente", 0, nil)

	assert.Empty(t, o.BookIDs)
}

// TestComputedTotal 按关联图书单价汇总
func TestComputedTotal(t *testing.T) {
	o := NewOrder(nil, time.Now(), "pendente", 7000, []uint{1, 2, 3})
	prices := map[uint]int64{1: 2000, 2: 2000, 3: 3000}

	assert.Equal(t, int64(7000), o.ComputedTotal(prices))
	assert.True(t, o.Consistent(prices))
}

// TestComputedTotal_Inconsistent 存储总额与计算总额不一致时暴露偏差
func TestComputedTotal_Inconsistent(t *testing.T) {
	o := NewOrder(nil, time.Now(), "pendente", 9999, []uint{1, 2})
	prices := map[uint]int64{1: 2000, 2: 2000}

	assert.Equal(t, int64(4000), o.ComputedTotal(prices))
	assert.False(t, o.Consistent(prices))
}

// TestHasPayment 支付投影存在性
func TestHasPayment(t *testing.T) {
	o := NewOrder(nil, time.Now(), "pendente", 0, nil)
	assert.False(t, o.HasPayment())
}
