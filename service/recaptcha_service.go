package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const minCaptchaScore = 0.5

// RecaptchaService verifies client captcha tokens against the Google
// siteverify endpoint. It fails closed: with no secret configured, or on any
// transport or API error, verification does not pass.
type RecaptchaService struct {
	secret     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

func NewRecaptchaService(logger *zap.Logger) *RecaptchaService {
	secret := os.Getenv("RECAPTCHA_SECRET_KEY")

	return &RecaptchaService{
		secret:  secret,
		apiURL:  "https://www.google.com/recaptcha/api/siteverify",
		enabled: secret != "",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (s *RecaptchaService) Verify(token string) (bool, error) {
	if !s.enabled {
		s.logger.Warn("captcha secret not configured, rejecting token")
		return false, nil
	}
	if token == "" {
		return false, nil
	}

	resp, err := s.httpClient.PostForm(s.apiURL, url.Values{
		"secret":   {s.secret},
		"response": {token},
	})
	if err != nil {
		return false, fmt.Errorf("captcha verification request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha verification returned status %d", resp.StatusCode)
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode captcha verification response: %w", err)
	}

	if !body.Success {
		s.logger.Info("captcha token rejected",
			zap.String("errors", strings.Join(body.ErrorCodes, ",")))
		return false, nil
	}
	if body.Score > 0 && body.Score < minCaptchaScore {
		s.logger.Info("captcha score below threshold", zap.Float64("score", body.Score))
		return false, nil
	}

	return true, nil
}
