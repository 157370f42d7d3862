package exams

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newExamTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/teacher/cbt-exams", func(c *fiber.Ctx) error { return CreateExamAPI(c, nil) })
	app.Post("/api/pupils/submit-exam", func(c *fiber.Ctx) error { return SubmitExamAPI(c, nil) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateExamValidation(t *testing.T) {
	app := newExamTestApp()

	cases := []struct {
		name    string
		payload string
	}{
		{"empty body", `{}`},
		{"missing questions", `{"examTitle":"Maths","subject":"Mathematics","duration":30}`},
		{"zero duration", `{"examTitle":"Maths","subject":"Mathematics","duration":0,"questions":[{"question":"1+1?","options":["1","2"],"correctAnswer":"2"}]}`},
		{"question without options", `{"examTitle":"Maths","subject":"Mathematics","duration":30,"questions":[{"question":"1+1?","correctAnswer":"2"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/teacher/cbt-exams", tc.payload)
			require.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestSubmitExamRequiresExamID(t *testing.T) {
	app := newExamTestApp()

	resp := postJSON(t, app, "/api/pupils/submit-exam", `{"answers":{"0":"B"}}`)
	require.Equal(t, 400, resp.StatusCode)
}
