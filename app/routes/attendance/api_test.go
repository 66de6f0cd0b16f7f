package attendance

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// validation failures are rejected before any database access, so the
// handlers can run against a nil pool here
func testApp() *fiber.App {
	app := fiber.New()
	SetupAttendanceRoutes(app, nil)
	return app
}

func TestUpsertAttendanceValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
		wantField  string
	}{
		{
			name:       "all required fields missing",
			body:       `{}`,
			wantStatus: 400,
			wantFields: []string{"student_id", "date", "status"},
		},
		{
			name:       "status missing",
			body:       `{"student_id":"STD-1","date":"2026-03-01"}`,
			wantStatus: 400,
			wantFields: []string{"status"},
		},
		{
			name:       "unknown status",
			body:       `{"student_id":"STD-1","date":"2026-03-01","status":"vacation"}`,
			wantStatus: 400,
			wantField:  "status",
		},
		{
			name:       "bad date format",
			body:       `{"student_id":"STD-1","date":"01/03/2026","status":"present"}`,
			wantStatus: 400,
			wantField:  "date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/attendance", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

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

func TestGetAttendanceRejectsBadDate(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/api/attendance?date=yesterday", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "date", body["field"])
}
