package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/duewise/backend/internal/controllers/v1"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProfilesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProfilesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProfile(t, v1.ProfileEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/profiles", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ProfileListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestProfilesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProfilesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Profiles endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Profile with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Profile exists", createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/profiles", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestProfilesCreate() {
	tests := []struct {
		name           string
		profiles       any
		expectedStatus int
		expectedErrors []string
	}{
		{
			"All successful",
			[]v1.ProfileEditable{{Name: "Household", Currency: "eur"}, {Name: "Business", CurrentCash: decimal.NewFromFloat(12.5)}},
			http.StatusCreated,
			[]string{"", ""},
		},
		{
			"Second fails",
			[]v1.ProfileEditable{{Name: "Valid"}, {Name: "Invalid", Currency: "Euro"}},
			http.StatusBadRequest,
			[]string{"", models.ErrCurrencyInvalid.Error()},
		},
		{
			"Broken body",
			`[{ "name": 2 }]`,
			http.StatusBadRequest,
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", tt.profiles)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var response v1.ProfileCreateResponse
			test.DecodeResponse(t, &r, &response)

			for i, e := range tt.expectedErrors {
				if e == "" {
					require.NotNil(t, response.Data[i].Data)
					assert.Nil(t, response.Data[i].Error)
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/profiles/%s", response.Data[i].Data.ID), response.Data[i].Data.Links.Self)
					continue
				}

				assert.Equal(t, e, *response.Data[i].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesCurrencyNormalized() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Currency: " usd "})
	assert.Equal(suite.T(), "USD", p.Data.Currency)
}

// TestProfilesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestProfilesGetSingle() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"GET Existing Profile", p.Data.ID.String(), http.StatusOK},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"GET No Profile with this ID", uuid.New().String(), http.StatusNotFound},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetFilter() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Household", Currency: "EUR"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Small business", Currency: "USD"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Holiday house", Currency: "EUR"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Currency EUR", "currency=EUR", 2},
		{"Currency USD", "currency=USD", 1},
		{"Search for 'house'", "search=house", 2},
		{"Search for 'BUSINESS'", "search=BUSINESS", 1},
		{"Search and currency", "search=house&currency=USD", 0},
		{"No filter", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ProfileListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Before", Currency: "EUR"})

	tests := []struct {
		name     string
		body     any
		status   int
		expected string
	}{
		{"Name only", map[string]any{"name": "After"}, http.StatusOK, ""},
		{"Invalid currency", map[string]any{"currency": "nope"}, http.StatusBadRequest, models.ErrCurrencyInvalid.Error()},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, ""},
		{"Empty body", "", http.StatusBadRequest, "request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, p.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "After", response.Data.Name)
				assert.Equal(t, "EUR", response.Data.Currency, "fields missing in the body must not change")
				return
			}

			if tt.expected != "" {
				assert.True(t, strings.Contains(*response.Error, tt.expected), "Error is '%s'", *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdateNonExisting() {
	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/profiles/%s", uuid.New()), map[string]any{"name": "x"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProfilesDelete() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
