package auth

import (
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestPupil(t *testing.T, db *sql.DB, password string) *models.Pupil {
	t.Helper()
	hashed, err := HashPassword(password)
	require.NoError(t, err)

	n := rand.Intn(1000000)
	user := &models.User{
		UIN:      fmt.Sprintf("GFA-P-%06d", n),
		Role:     models.RolePupil,
		FullName: "Login Test Pupil",
		Username: "logintestpupil",
		Email:    fmt.Sprintf("login%06d@example.com", n),
		Password: hashed,
	}
	require.NoError(t, database.CreateUser(db, user))
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM pupils WHERE user_id = $1`, user.ID)
		_, _ = db.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	})

	pupil := &models.Pupil{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Class:    "Primary 2",
		UIN:      user.UIN,
		Password: hashed,
	}
	require.NoError(t, database.CreatePupil(db, pupil))
	return pupil
}

func findSessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestLoginRoundTrip(t *testing.T) {
	db := testDB(t)
	codec := NewCodec("test-secret")
	pupil := createTestPupil(t, db, "correct-horse")

	app := fiber.New()
	app.Post("/api/pupils/login", func(c *fiber.Ctx) error { return LoginPupilAPI(c, db, codec) })

	payload := fmt.Sprintf(`{"uin":%q,"password":"correct-horse"}`, pupil.UIN)
	req := httptest.NewRequest(http.MethodPost, "/api/pupils/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	ck := findSessionCookie(resp)
	require.NotNil(t, ck)
	require.True(t, ck.HttpOnly)

	claims, err := codec.Verify(ck.Value)
	require.NoError(t, err)
	require.Equal(t, pupil.UIN, claims.UIN)
	require.Equal(t, models.RolePupil, claims.Role)
}

func TestLoginWrongPasswordSetsNoCookie(t *testing.T) {
	db := testDB(t)
	codec := NewCodec("test-secret")
	pupil := createTestPupil(t, db, "correct-horse")

	app := fiber.New()
	app.Post("/api/pupils/login", func(c *fiber.Ctx) error { return LoginPupilAPI(c, db, codec) })

	cases := []string{
		fmt.Sprintf(`{"uin":%q,"password":"wrong-horse"}`, pupil.UIN),
		`{"uin":"GFA-P-000000","password":"correct-horse"}`,
	}
	for _, payload := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/pupils/login", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 401, resp.StatusCode)
		require.Nil(t, findSessionCookie(resp))
	}
}
