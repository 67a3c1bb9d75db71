package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
	"github.com/xyzhou0323/weapp-xyz-service/internal/wechat"
)

// Mini-program sessions live for two hours, after which the client must log
// in again.
const sessionTTL = 7200 * time.Second

// WechatExchanger trades a mini-program login code for session credentials.
type WechatExchanger interface {
	JSCode2Session(code string) (*wechat.SessionResult, error)
}

type AuthService struct {
	db       *gorm.DB
	sessions *SessionService
	wx       WechatExchanger
}

func NewAuthService(db *gorm.DB, sessions *SessionService, wx WechatExchanger) *AuthService {
	return &AuthService{db: db, sessions: sessions, wx: wx}
}

type LoginResult struct {
	Session   string `json:"session"`
	ExpiresIn int    `json:"expiresIn"`
}

// Identity is the authenticated caller attached to requests by the session
// middleware.
type Identity struct {
	UserID     uint
	Openid     string
	SessionKey string
}

// Login exchanges the mini-program code with WeChat, gets or creates the
// local user for the openid, and stores a fresh session. A rejection from
// WeChat surfaces as ErrUnauthorized; the exchange itself has a bounded
// timeout and is never retried.
func (s *AuthService) Login(code string) (*LoginResult, error) {
	result, err := s.wx.JSCode2Session(code)
	if err != nil {
		if errors.Is(err, wechat.ErrCodeRejected) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, err
	}

	if _, err := s.getOrCreateUser(result.Openid); err != nil {
		return nil, err
	}

	session, err := s.sessions.Save(result.Openid, result.SessionKey, sessionTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Session:   session.ThirdSession,
		ExpiresIn: int(sessionTTL / time.Second),
	}, nil
}

// Authenticate resolves a bearer token to the identity behind it.
func (s *AuthService) Authenticate(token string) (*Identity, error) {
	session, err := s.sessions.Validate(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("wechat_openid = ?", session.Openid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return &Identity{
		UserID:     user.ID,
		Openid:     session.Openid,
		SessionKey: session.SessionKey,
	}, nil
}

func (s *AuthService) getOrCreateUser(openid string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("wechat_openid = ?", openid).First(&user).Error; err == nil {
		return &user, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{WechatOpenid: &openid}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
