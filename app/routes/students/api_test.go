package students

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func testApp() *fiber.App {
	app := fiber.New()
	SetupStudentsRoutes(app, nil)
	return app
}

func TestCreateStudentValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name       string
		body       string
		wantFields []string
		wantField  string
	}{
		{
			name:       "all required fields missing",
			body:       `{}`,
			wantFields: []string{"first_name", "last_name", "section_id"},
		},
		{
			name:       "section missing",
			body:       `{"first_name":"Ali","last_name":"Hassan"}`,
			wantFields: []string{"section_id"},
		},
		{
			name:      "bad birth date",
			body:      `{"first_name":"Ali","last_name":"Hassan","section_id":"sec-1","birth_date":"15-01-2015"}`,
			wantField: "birth_date",
		},
		{
			name:      "bad admission date",
			body:      `{"first_name":"Ali","last_name":"Hassan","section_id":"sec-1","admission_date":"now"}`,
			wantField: "admission_date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/students", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(raw, &body))
			assert.NotEmpty(t, body["error"])

			if tt.wantFields != nil {
				fields, ok := body["fields"].([]interface{})
				assert.True(t, ok, "expected fields list in response")
				var got []string
				for _, f := range fields {
					got = append(got, f.(string))
				}
				assert.ElementsMatch(t, tt.wantFields, got)
			}
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, body["field"])
			}
		})
	}
}
