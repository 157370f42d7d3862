package blogs

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

func newBlogTestApp(blobs storage.BlobService) *fiber.App {
	app := fiber.New()
	app.Post("/api/blogs", func(c *fiber.Ctx) error { return CreateBlogAPI(c, nil, blobs) })
	app.Delete("/api/blogs", func(c *fiber.Ctx) error { return DeleteBlogAPI(c, nil, blobs) })
	return app
}

func multipartBlog(t *testing.T, imageType string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Sports day"))
	require.NoError(t, w.WriteField("content", "It was fun."))

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="pic.bin"`)
	h.Set("Content-Type", imageType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateBlogRejectsNonImageUpload(t *testing.T) {
	app := newBlogTestApp(storage.NewMock())

	body, contentType := multipartBlog(t, "application/pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)
}

func TestCreateBlogRequiresTitleAndContent(t *testing.T) {
	app := newBlogTestApp(storage.NewMock())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Only a title"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)
}

func TestDeleteBlogRequiresID(t *testing.T) {
	app := newBlogTestApp(storage.NewMock())

	req := httptest.NewRequest(http.MethodDelete, "/api/blogs", strings.NewReader(`{"imageUrl":"https://storage.test/x.png"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)
}

func TestDeleteBlogStorageFailureStopsDelete(t *testing.T) {
	mock := storage.NewMock()
	mock.FailWith = errors.New("oss unavailable")
	app := newBlogTestApp(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/blogs",
		strings.NewReader(`{"id":"b1","imageUrl":"https://storage.test/blog_images/1.png"}`))
	req.Header.Set("Content-Type", "application/json")

	// The handler must abort before touching the database: the db handle
	// here is nil, so reaching it would panic instead of returning 500.
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 500, resp.StatusCode)
}
