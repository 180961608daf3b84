package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	postmodel "mini-blog/pkg/core/post/model"
)

// User is a registered account.
//
// Password is stored and compared verbatim. This is a known deficiency kept
// for compatibility with existing clients; it must be hashed before any
// production use.
type User struct {
	ID       string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string           `gorm:"type:varchar(255)" json:"name"`
	Email    string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string           `gorm:"type:varchar(255);not null" json:"password"`
	Posts    []postmodel.Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 定义映射表名
func (User) TableName() string {
	return "users"
}

// BeforeCreate 生成主键
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate 建表（仅在 database.auto_migrate 开启时由启动流程调用）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &postmodel.Post{})
}
