package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// Save issues a fresh thirdSession token and upserts the session keyed on
// openid. Because the row is replaced in place, a token issued by an earlier
// login for the same openid stops resolving immediately.
func (s *SessionService) Save(openid, sessionKey string, ttl time.Duration) (*models.WechatSession, error) {
	session := models.WechatSession{
		ThirdSession: uuid.NewString(),
		Openid:       openid,
		SessionKey:   sessionKey,
		ExpiresAt:    time.Now().Add(ttl),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "openid"}},
		DoUpdates: clause.AssignmentColumns([]string{"third_session", "session_key", "expires_at", "updated_at"}),
	}).Create(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Validate resolves a bearer token to its session. Expiry is checked against
// the current time on every call; there is no background eviction.
func (s *SessionService) Validate(token string) (*models.WechatSession, error) {
	var session models.WechatSession
	if err := s.db.Where("third_session = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrUnauthorized
	}
	return &session, nil
}
