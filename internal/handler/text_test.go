package handler_test

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/deepakn/token-generation-api/internal/config"
    "github.com/deepakn/token-generation-api/internal/handler"
    "github.com/deepakn/token-generation-api/internal/model"
    "github.com/deepakn/token-generation-api/internal/router"
)

// newTestServer wires the real routes with a fixed config. Usage events
// stay off so tests never touch a broker; redis middleware is not mounted
// because handlers must behave identically without it.
func newTestServer() *echo.Echo {
    e := echo.New()
    cfg := config.Config{
        AppName:     "Token Generation API",
        AppVersion:  "1.0.0",
        Participant: "Deepak",
        Env:         "test",
    }
    router.RegisterRoutes(e, handler.NewTextHandler(cfg))
    return e
}

func doGET(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
    t.Helper()
    req := httptest.NewRequest(http.MethodGet, target, nil)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func doPOST(t *testing.T, e *echo.Echo, path, body string) *httptest.ResponseRecorder {
    t.Helper()
    req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestHealth(t *testing.T) {
    rec := doGET(t, newTestServer(), "/healthz")
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "ok", rec.Body.String())
}

func TestWelcome(t *testing.T) {
    rec := doGET(t, newTestServer(), "/")
    require.Equal(t, http.StatusOK, rec.Code)

    var w model.Welcome
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
    assert.Equal(t, "Welcome to the Token Generation API!", w.Message)
    assert.Equal(t, "Deepak", w.Participant)
    assert.Equal(t, "test", w.Environment)
    for _, route := range []string{"/", "/generate", "/tokenize", "/checksum"} {
        assert.Contains(t, w.Endpoints, route)
    }
}

func TestGenerateFromQuery(t *testing.T) {
    e := newTestServer()

    rec := doGET(t, e, "/generate?text="+url.QueryEscape("Hello World"))
    require.Equal(t, http.StatusOK, rec.Code)

    var resp model.TokenResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, []string{"Hello", "World"}, resp.Tokens)
    assert.Equal(t, 2, resp.Count)
}

func TestGenerateFromQueryRejectsBlankText(t *testing.T) {
    e := newTestServer()
    for _, target := range []string{
        "/generate",
        "/generate?text=",
        "/generate?text=" + url.QueryEscape("   "),
        "/generate?text=" + url.QueryEscape(" \t\n "),
    } {
        rec := doGET(t, e, target)
        assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
        assert.Contains(t, rec.Body.String(), "error")
    }
}

func TestTokenize(t *testing.T) {
    e := newTestServer()

    rec := doPOST(t, e, "/tokenize", `{"text": "Hello World"}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var resp model.TokenResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, []string{"Hello", "World"}, resp.Tokens)
    assert.Equal(t, 2, resp.Count)
}

func TestTokenizeCountMatchesTokens(t *testing.T) {
    e := newTestServer()

    rec := doPOST(t, e, "/tokenize", `{"text": "  one\ttwo\nthree  "}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var resp model.TokenResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, []string{"one", "two", "three"}, resp.Tokens)
    assert.Equal(t, len(resp.Tokens), resp.Count)
}

func TestTokenizeValidationErrors(t *testing.T) {
    e := newTestServer()

    // blank text is invalid input
    for _, body := range []string{`{"text": ""}`, `{"text": "   "}`} {
        rec := doPOST(t, e, "/tokenize", body)
        assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
    }

    // malformed bodies never reach the core
    for _, body := range []string{`{}`, `{"other": "field"}`, `{"text": 42}`, `not json`} {
        rec := doPOST(t, e, "/tokenize", body)
        assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body %s", body)
    }
}

func TestChecksum(t *testing.T) {
    e := newTestServer()

    rec := doPOST(t, e, "/checksum", `{"text": "Hello World"}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var resp model.ChecksumResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, "b10a8db164e0754105b7a99be72e3fe5", resp.Checksum)
    assert.Equal(t, "Hello World", resp.OriginalText)
}

func TestChecksumEchoesTextVerbatim(t *testing.T) {
    e := newTestServer()

    // surrounding whitespace survives validation and is part of the digest
    rec := doPOST(t, e, "/checksum", `{"text": " Hello World "}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var resp model.ChecksumResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, " Hello World ", resp.OriginalText)
    assert.NotEqual(t, "b10a8db164e0754105b7a99be72e3fe5", resp.Checksum)
    assert.Regexp(t, "^[0-9a-f]{32}$", resp.Checksum)
}

func TestChecksumValidationMatchesTokenize(t *testing.T) {
    e := newTestServer()

    for _, body := range []string{`{"text": ""}`, `{"text": "  \t "}`} {
        rec := doPOST(t, e, "/checksum", body)
        assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
    }
    for _, body := range []string{`{}`, `{"text": null}`, `broken`} {
        rec := doPOST(t, e, "/checksum", body)
        assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body %s", body)
    }
}
