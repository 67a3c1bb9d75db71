package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

func TestSessionValidate(t *testing.T) {
	t.Run("live session resolves", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewSessionService(db)

		saved, err := svc.Save("oX1234", "key-abc", time.Hour)
		require.NoError(t, err)

		session, err := svc.Validate(saved.ThirdSession)
		require.NoError(t, err)
		assert.Equal(t, "oX1234", session.Openid)
		assert.Equal(t, "key-abc", session.SessionKey)
	})

	t.Run("unknown token is unauthorized", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewSessionService(db)

		_, err := svc.Validate("no-such-token")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired session is unauthorized even though the row exists", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewSessionService(db)

		expired := models.WechatSession{
			ThirdSession: "stale-token",
			Openid:       "oX1234",
			SessionKey:   "key-abc",
			ExpiresAt:    time.Now().Add(-time.Minute),
		}
		require.NoError(t, db.Create(&expired).Error)

		_, err := svc.Validate("stale-token")
		assert.ErrorIs(t, err, ErrUnauthorized)

		var count int64
		require.NoError(t, db.Model(&models.WechatSession{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "expiry is checked on read, the row stays")
	})
}

func TestSessionSaveUpserts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSessionService(db)

	first, err := svc.Save("oX1234", "key-one", time.Hour)
	require.NoError(t, err)
	second, err := svc.Save("oX1234", "key-two", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first.ThirdSession, second.ThirdSession)

	var count int64
	require.NoError(t, db.Model(&models.WechatSession{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "one live session per openid")

	// The replaced row took the new token with it, so the earlier token
	// stops resolving as soon as the user logs in again.
	_, err = svc.Validate(first.ThirdSession)
	assert.ErrorIs(t, err, ErrUnauthorized)

	session, err := svc.Validate(second.ThirdSession)
	require.NoError(t, err)
	assert.Equal(t, "key-two", session.SessionKey)
}
