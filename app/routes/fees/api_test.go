package fees

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
	SetupFeesRoutes(app, nil)
	return app
}

func TestCreateFeeValidation(t *testing.T) {
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
			wantFields: []string{"student_id", "fee_type_id", "amount"},
		},
		{
			name:       "amount missing",
			body:       `{"student_id":"STD-1","fee_type_id":"ft-1"}`,
			wantFields: []string{"amount"},
		},
		{
			name:      "negative amount",
			body:      `{"student_id":"STD-1","fee_type_id":"ft-1","amount":-50}`,
			wantField: "amount",
		},
		{
			name:      "bad payment date",
			body:      `{"student_id":"STD-1","fee_type_id":"ft-1","amount":100,"payment_date":"March 1"}`,
			wantField: "payment_date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/fees", strings.NewReader(tt.body))
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
