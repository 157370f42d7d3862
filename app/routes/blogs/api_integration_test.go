package blogs

import (
	"context"
	"database/sql"
	"fmt"
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
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
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

func TestDeleteBlogRemovesImageAndRecord(t *testing.T) {
	db := testDB(t)
	mock := storage.NewMock()

	imageURL, err := mock.Upload(context.Background(), "blog_images/delete-me.png",
		strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	blog := &models.Blog{
		Title:      "Doomed post",
		Content:    "Short lived.",
		AuthorID:   "t1",
		AuthorName: "Test Teacher",
		AuthorRole: "teacher",
		ImageURL:   imageURL,
	}
	require.NoError(t, database.CreateBlog(db, blog))
	t.Cleanup(func() { _ = database.DeleteBlog(db, blog.ID) })

	app := fiber.New()
	app.Delete("/api/blogs", func(c *fiber.Ctx) error { return DeleteBlogAPI(c, db, mock) })

	payload := fmt.Sprintf(`{"id":%q,"imageUrl":%q}`, blog.ID, imageURL)
	req := httptest.NewRequest(http.MethodDelete, "/api/blogs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// Both observable effects: the object is gone from storage and the
	// record is gone from the database.
	require.Equal(t, []string{imageURL}, mock.Deletes)
	require.NotContains(t, mock.Objects, "blog_images/delete-me.png")

	_, err = database.GetBlog(db, blog.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}
