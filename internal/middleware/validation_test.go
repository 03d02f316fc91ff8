package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"max=8"`
}

// Property: required fields are enforced
func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeName bool, code string) bool {
			reqMap := map[string]interface{}{"code": code}
			if includeName {
				reqMap["name"] = "Whey"
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))

			var testReq testRequest
			err := DecodeAndValidate(req, &testReq)

			if includeName {
				return err == nil
			}
			return err != nil && len(FormatValidationErrors(err)) == 1
		},
		gen.Bool(),
		gen.AlphaString().Map(func(s string) string {
			if len(s) > 8 {
				return s[:8]
			}
			return s
		}),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: over-long values report the offending field
func TestProperty_ValidationErrorsNameTheField(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("max violations are reported on the field", prop.ForAll(
		func(extra int) bool {
			body, _ := json.Marshal(map[string]string{"name": "x", "code": strings.Repeat("A", 9+extra)})
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(body))

			var testReq testRequest
			errs := FormatValidationErrors(DecodeAndValidate(req, &testReq))

			return len(errs) == 1 && errs[0].Field == "Code" && errs[0].Message == "Value is too long"
		},
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDecodeAndValidate_MalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"name":`))

	var testReq testRequest
	err := DecodeAndValidate(req, &testReq)

	require.Error(t, err)
	assert.Empty(t, FormatValidationErrors(err))
	assert.Empty(t, FormatValidationErrors(errors.New("other")))
}
