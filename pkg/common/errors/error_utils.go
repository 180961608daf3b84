package errors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers we translate.
const (
	mysqlErrDBAccessDenied  = 1044
	mysqlErrAccessDenied    = 1045
	mysqlErrBadNull         = 1048
	mysqlErrBadDB           = 1049
	mysqlErrBadField        = 1054
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoSuchTable     = 1146
	mysqlErrNoReferencedRow = 1452
)

// region 错误处理工具函数

// WrapGormError 将底层数据库错误转变为业务可识别错误
// 参数说明：
//   - rawErr: 原始GORM错误
//   - notFound: 记录不存在时返回的哨兵错误（ErrUserNotFound / ErrPostNotFound）
//
// 返回值：
//   - error: 标准化错误类型
func WrapGormError(rawErr error, notFound error) error {
	if rawErr == nil {
		return nil
	}

	// 处理预定义的GORM错误
	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(rawErr, gorm.ErrDuplicatedKey):
		return ErrDuplicateEntry
	case errors.Is(rawErr, gorm.ErrInvalidDB),
		errors.Is(rawErr, gorm.ErrInvalidTransaction),
		errors.Is(rawErr, gorm.ErrUnsupportedRelation):
		return fmt.Errorf("%w: %v", ErrDatabaseInternal, rawErr)
	}

	// 处理MySQL驱动错误
	var mysqlErr *mysql.MySQLError
	if errors.As(rawErr, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry: // 唯一性约束冲突
			return ErrDuplicateEntry
		case mysqlErrDBAccessDenied, mysqlErrAccessDenied, mysqlErrBadDB,
			mysqlErrBadField, mysqlErrBadNull, mysqlErrNoSuchTable, mysqlErrNoReferencedRow:
			return fmt.Errorf("%w: %s", ErrDatabaseInternal, mysqlErr.Message)
		}
	}

	// 兜底处理：附加原始错误信息
	return fmt.Errorf("%w: %v", ErrDatabaseInternal, rawErr)
}

// IsDuplicateError 判断是否为重复记录错误
func IsDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return true
	}
	return errors.Is(err, ErrDuplicateEntry) || errors.Is(err, gorm.ErrDuplicatedKey)
}
