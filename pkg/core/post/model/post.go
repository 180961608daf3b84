package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID       string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Title        string `gorm:"type:varchar(255);not null" json:"title"`
	Description  string `gorm:"type:text;not null" json:"description"`
	CommentCount int    `gorm:"default:0;not null" json:"comment_count"`
}

// TableName 定义映射表名
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate 生成主键
func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
