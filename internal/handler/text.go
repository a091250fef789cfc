// Package handler exposes the HTTP handlers of the token generation API.
// Handlers own request parsing and validation; the actual work is done by
// the pure functions in the token package, so nothing here carries state
// between requests.
package handler

import (
    "context"
    "net/http"
    "time"
    "unicode/utf8"

    "github.com/labstack/echo/v4"

    "github.com/deepakn/token-generation-api/internal/config"
    "github.com/deepakn/token-generation-api/internal/model"
    "github.com/deepakn/token-generation-api/internal/queue"
    queue_publisher "github.com/deepakn/token-generation-api/internal/service"
    "github.com/deepakn/token-generation-api/internal/token"
)

// TextHandler bundles the configuration needed by the text endpoints.
type TextHandler struct {
    Cfg config.Config
}

func NewTextHandler(cfg config.Config) *TextHandler {
    return &TextHandler{Cfg: cfg}
}

// Welcome serves the landing payload at GET /. The endpoint map doubles as
// minimal API documentation for anyone poking at the root path.
func (h *TextHandler) Welcome(c echo.Context) error {
    return c.JSON(http.StatusOK, model.Welcome{
        Message:     "Welcome to the " + h.Cfg.AppName + "!",
        Participant: h.Cfg.Participant,
        Environment: h.Cfg.Env,
        Description: "This API provides endpoints for text tokenization and checksum generation.",
        Endpoints: map[string]string{
            "/":         "Welcome message",
            "/generate": "GET - Generate tokens from query parameter",
            "/tokenize": "POST - Generate tokens from JSON body",
            "/checksum": "POST - Generate checksum from text",
        },
    })
}

// GenerateFromQuery handles GET /generate?text=... and returns the token
// list for the query text. An absent, empty or whitespace-only parameter
// is a 400.
func (h *TextHandler) GenerateFromQuery(c echo.Context) error {
    text := c.QueryParam("text")
    if _, err := token.Validate(text); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "text parameter cannot be empty"})
    }

    tokens := token.Tokenize(text)
    h.publishUsage("generate", text, len(tokens), "")
    return c.JSON(http.StatusOK, model.TokenResponse{Tokens: tokens, Count: len(tokens)})
}

// Tokenize handles POST /tokenize with a JSON body {"text": "..."}. A body
// that fails to decode or lacks the text field is a 422; a present but
// empty or whitespace-only text is a 400.
func (h *TextHandler) Tokenize(c echo.Context) error {
    text, ok, err := bindText(c)
    if !ok {
        return err
    }

    tokens := token.Tokenize(text)
    h.publishUsage("tokenize", text, len(tokens), "")
    return c.JSON(http.StatusOK, model.TokenResponse{Tokens: tokens, Count: len(tokens)})
}

// Checksum handles POST /checksum with a JSON body {"text": "..."}. The
// digest covers the text exactly as received, surrounding whitespace
// included, and original_text echoes the same bytes back.
func (h *TextHandler) Checksum(c echo.Context) error {
    text, ok, err := bindText(c)
    if !ok {
        return err
    }

    sum := token.Checksum(text)
    h.publishUsage("checksum", text, 0, sum)
    return c.JSON(http.StatusOK, model.ChecksumResponse{Checksum: sum, OriginalText: text})
}

// bindText decodes the TextInput body shared by the POST endpoints and
// applies the common validation. When ok is false the error response has
// already been written and callers should return err as-is. 422 covers
// malformed bodies and a missing field; 400 covers text that is present
// but blank.
func bindText(c echo.Context) (text string, ok bool, err error) {
    var body model.TextInput
    if err := c.Bind(&body); err != nil {
        return "", false, c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid json body"})
    }
    if body.Text == nil {
        return "", false, c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "field 'text' is required"})
    }
    text, err = token.Validate(*body.Text)
    if err != nil {
        return "", false, c.JSON(http.StatusBadRequest, echo.Map{"error": "text cannot be empty"})
    }
    return text, true, nil
}

// publishUsage emits a TextProcessedEvent for a completed operation when
// usage events are enabled. Publishing happens in a goroutine with its own
// timeout so a slow or missing broker never delays the response; errors
// are handled (logged) inside the publisher.
func (h *TextHandler) publishUsage(op, text string, tokenCount int, checksum string) {
    if !h.Cfg.UsageEvents {
        return
    }
    ev := queue.TextProcessedEvent{
        Operation:   op,
        InputChars:  utf8.RuneCountInString(text),
        TokenCount:  tokenCount,
        Checksum:    checksum,
        ProcessedAt: time.Now().UTC().Format(time.RFC3339),
    }
    url := h.Cfg.AMQPURL
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishTextProcessed(ctx, url, ev)
    }()
}
