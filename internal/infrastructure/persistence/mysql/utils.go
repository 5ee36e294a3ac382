package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一索引冲突
// TranslateError开启后MySQL 1062/sqlite的唯一冲突都映射到gorm.ErrDuplicatedKey；
// 字符串检查作为旧驱动的兜底
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isFKViolation 判断是否为外键约束冲突
// 写入时：引用了不存在的行（MySQL 1452）
// 删除时：存在引用当前行的子记录（MySQL 1451）
func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "foreign key constraint") ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
