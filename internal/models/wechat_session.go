package models

import "time"

// WechatSession maps a mini-program login to a server-side session. There is
// one live row per openid: a new login replaces the previous one. ExpiresAt
// is checked on every use; expired rows are never evicted in the background.
type WechatSession struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ThirdSession string    `gorm:"size:64;uniqueIndex;not null" json:"third_session"`
	Openid       string    `gorm:"size:64;uniqueIndex;not null" json:"openid"`
	SessionKey   string    `gorm:"size:64;not null" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
