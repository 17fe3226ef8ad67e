package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeMailer counts reward emails instead of dialing SMTP
type fakeMailer struct {
	sent []string
	fail bool
}

func (f *fakeMailer) SendRewardEmail(to, offerName, title, code string) error {
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

// fakeGeo returns a fixed location
type fakeGeo struct {
	loc utils.GeoLocation
}

func (f *fakeGeo) Resolve(ip string) utils.GeoLocation {
	return f.loc
}

// setupTestDB points config.DB at a fresh in-memory database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	return db
}

// setupDeps installs fakes and returns the mailer for assertions
func setupDeps(countryCode string) *fakeMailer {
	fm := &fakeMailer{}
	Init(fm, &fakeGeo{loc: utils.GeoLocation{
		Country:     "Ghana",
		CountryCode: countryCode,
		City:        "Accra",
		Region:      "Greater Accra",
		Timezone:    "Africa/Accra",
	}})
	return fm
}

// doJSON performs a request with a JSON body against a router
func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into a map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
