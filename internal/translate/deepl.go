package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/config"
)

// ErrUnavailable is returned for every translation failure regardless of
// cause (quota, malformed input, provider outage). Callers decide whether to
// retry; the client never does.
var ErrUnavailable = errors.New("translation unavailable")

// DeepLClient is a thin wrapper around DeepL's v2 translate endpoint.
type DeepLClient struct {
	authKey    string
	apiBaseURL string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDeepLClient constructs a client from the supplied configuration.
func NewDeepLClient(cfg config.DeepLConfig, logger *zap.Logger) *DeepLClient {
	return &DeepLClient{
		authKey:    cfg.AuthKey,
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.CallTimeout()},
		logger:     logger,
	}
}

type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
	Message string `json:"message"`
}

// Translate sends text to DeepL and returns the translated text. Any failure
// is normalized into an error wrapping ErrUnavailable.
func (c *DeepLClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	form := url.Values{}
	form.Set("auth_key", c.authKey)
	form.Set("text", text)
	form.Set("target_lang", targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("deepl request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", parsed.Message))
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if len(parsed.Translations) == 0 {
		return "", fmt.Errorf("%w: empty translations", ErrUnavailable)
	}

	return parsed.Translations[0].Text, nil
}
