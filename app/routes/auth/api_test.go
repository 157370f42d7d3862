package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(codec Codec) *fiber.App {
	app := fiber.New()
	app.Post("/api/pupils/login", func(c *fiber.Ctx) error { return LoginPupilAPI(c, nil, codec) })
	app.Post("/api/pupils/logout", LogoutAPI)
	app.Get("/api/auth/session", func(c *fiber.Ctx) error { return SessionAPI(c, codec) })
	app.Get("/api/auth-check", func(c *fiber.Ctx) error { return AuthCheckAPI(c, codec) })
	app.Get("/protected", RequireAuth(codec), func(c *fiber.Ctx) error {
		claims := SessionFromContext(c)
		return c.JSON(fiber.Map{"uin": claims.UIN})
	})
	app.Get("/teacher-only", RequireAuth(codec), RequireRole("teacher"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func sessionCookie(t *testing.T, codec Codec, claims Claims) *http.Cookie {
	t.Helper()
	token, err := codec.Issue(claims)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &body))
	return body
}

func TestLoginRequiresUINAndPassword(t *testing.T) {
	app := newTestApp(PlainCodec{})

	cases := []string{
		`{}`,
		`{"uin":"GFA-P-1234"}`,
		`{"password":"pass"}`,
	}
	for _, payload := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/pupils/login", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 400, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, "UIN and Password are required!", body["error"])
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(PlainCodec{})

	req := httptest.NewRequest(http.MethodPost, "/api/pupils/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var cleared *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookieName {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.LessOrEqual(t, cleared.MaxAge, 0)
}

func TestSessionEndpoint(t *testing.T) {
	codec := NewCodec("test-secret")
	app := newTestApp(codec)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 401, resp.StatusCode)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 400, resp.StatusCode)
	})

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req.AddCookie(sessionCookie(t, codec, Claims{UIN: "GFA-P-1234", Role: "pupil"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		body := decodeBody(t, resp)
		session := body["session"].(map[string]interface{})
		require.Equal(t, "GFA-P-1234", session["uin"])
		require.Equal(t, "pupil", session["role"])
	})

	t.Run("missing uin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req.AddCookie(sessionCookie(t, codec, Claims{Role: "pupil"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 400, resp.StatusCode)
	})
}

func TestAuthCheck(t *testing.T) {
	codec := NewCodec("test-secret")
	app := newTestApp(codec)

	req := httptest.NewRequest(http.MethodGet, "/api/auth-check", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/auth-check", nil)
	req.AddCookie(sessionCookie(t, codec, Claims{UIN: "GFA-T-9999", Role: "teacher"}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["authenticated"])
	require.Equal(t, "GFA-T-9999", body["uin"])
}

func TestRequireAuthMiddleware(t *testing.T) {
	codec := NewCodec("test-secret")
	app := newTestApp(codec)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, codec, Claims{UIN: "GFA-P-5555", Role: "pupil"}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "GFA-P-5555", body["uin"])
}

func TestRequireRole(t *testing.T) {
	codec := NewCodec("test-secret")
	app := newTestApp(codec)

	req := httptest.NewRequest(http.MethodGet, "/teacher-only", nil)
	req.AddCookie(sessionCookie(t, codec, Claims{UIN: "GFA-P-5555", Role: "pupil"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/teacher-only", nil)
	req.AddCookie(sessionCookie(t, codec, Claims{UIN: "GFA-T-1111", Role: "teacher"}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
}
