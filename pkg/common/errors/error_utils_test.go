package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	apperrors "mini-blog/pkg/common/errors"
)

func TestWrapGormError(t *testing.T) {
	cases := []struct {
		name     string
		raw      error
		notFound error
		want     error
	}{
		{"record not found maps to post sentinel", gorm.ErrRecordNotFound, apperrors.ErrPostNotFound, apperrors.ErrPostNotFound},
		{"record not found maps to user sentinel", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), apperrors.ErrUserNotFound, apperrors.ErrUserNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, apperrors.ErrUserNotFound, apperrors.ErrDuplicateEntry},
		{"mysql 1062", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, apperrors.ErrUserNotFound, apperrors.ErrDuplicateEntry},
		{"mysql unknown column", &mysql.MySQLError{Number: 1054, Message: "Unknown column 'nope'"}, apperrors.ErrPostNotFound, apperrors.ErrDatabaseInternal},
		{"invalid db", gorm.ErrInvalidDB, apperrors.ErrPostNotFound, apperrors.ErrDatabaseInternal},
		{"anything else", errors.New("connection refused"), apperrors.ErrPostNotFound, apperrors.ErrDatabaseInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := apperrors.WrapGormError(tc.raw, tc.notFound)
			if !errors.Is(got, tc.want) {
				t.Fatalf("WrapGormError(%v) = %v, want errors.Is %v", tc.raw, got, tc.want)
			}
		})
	}

	if err := apperrors.WrapGormError(nil, apperrors.ErrUserNotFound); err != nil {
		t.Fatalf("nil error should stay nil, got %v", err)
	}
}

func TestIsDuplicateError(t *testing.T) {
	if !apperrors.IsDuplicateError(&mysql.MySQLError{Number: 1062}) {
		t.Error("mysql 1062 should be a duplicate")
	}
	if !apperrors.IsDuplicateError(fmt.Errorf("create: %w", apperrors.ErrDuplicateEntry)) {
		t.Error("wrapped ErrDuplicateEntry should be a duplicate")
	}
	if apperrors.IsDuplicateError(apperrors.ErrUserNotFound) {
		t.Error("not found is not a duplicate")
	}
}
