package wechat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrCodeRejected means WeChat refused the login code (errcode != 0).
var ErrCodeRejected = errors.New("wechat rejected login code")

type Client struct {
	appID      string
	secret     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(appID, secret string) *Client {
	return &Client{
		appID:      appID,
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.weixin.qq.com",
	}
}

type SessionResult struct {
	Openid     string `json:"openid"`
	SessionKey string `json:"session_key"`
	Unionid    string `json:"unionid,omitempty"`
	ErrCode    int    `json:"errcode,omitempty"`
	ErrMsg     string `json:"errmsg,omitempty"`
}

// JSCode2Session exchanges a mini-program login code for the user's openid
// and session key. One bounded-timeout request, no retries; a failed login
// is surfaced to the client to retry itself.
func (c *Client) JSCode2Session(code string) (*SessionResult, error) {
	params := url.Values{}
	params.Set("appid", c.appID)
	params.Set("secret", c.secret)
	params.Set("js_code", code)
	params.Set("grant_type", "authorization_code")

	resp, err := c.httpClient.Get(c.baseURL + "/sns/jscode2session?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var result SessionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if result.ErrCode != 0 {
		return nil, fmt.Errorf("%w: %d %s", ErrCodeRejected, result.ErrCode, result.ErrMsg)
	}

	return &result, nil
}
