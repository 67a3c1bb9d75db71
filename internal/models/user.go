package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     *string   `gorm:"size:100;uniqueIndex" json:"username,omitempty"`
	WechatOpenid *string   `gorm:"size:64;uniqueIndex" json:"wechat_openid,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
