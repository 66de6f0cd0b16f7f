package discounts

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
	SetupDiscountsRoutes(app, nil)
	return app
}

func TestCreateDiscountValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name       string
		body       string
		wantFields []string
		wantField  string
	}{
		{
			name:       "all required fields missing",
			body:       `{"amount":100}`,
			wantFields: []string{"student_id", "reason", "approved_by"},
		},
		{
			name: "neither amount nor percentage",
			body: `{"student_id":"STD-1","reason":"sibling","approved_by":"principal"}`,
		},
		{
			name: "both amount and percentage",
			body: `{"student_id":"STD-1","reason":"sibling","approved_by":"principal","amount":100,"percentage":10}`,
		},
		{
			name:      "zero amount",
			body:      `{"student_id":"STD-1","reason":"sibling","approved_by":"principal","amount":0.0}`,
			wantField: "amount",
		},
		{
			name:      "percentage above 100",
			body:      `{"student_id":"STD-1","reason":"sibling","approved_by":"principal","percentage":120}`,
			wantField: "percentage",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/discounts", strings.NewReader(tt.body))
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
