package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"golang.org/x/crypto/bcrypt"

	"caballosapi/ipa"
	mw "caballosapi/middleware"
	"caballosapi/models"
	"caballosapi/pipeline"
)

var testKey = []byte("test-signing-key")

func testHandler(t *testing.T) *Handler {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	_, err = db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(context.Background())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = db.NewInsert().Model(&models.User{Username: "scraper", Password: string(hash)}).
		Exec(context.Background())
	require.NoError(t, err)

	return New(db, pipeline.New(db, ipa.Generator{}), testKey, 20)
}

func signinRequest(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rp/signin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Signin(e.NewContext(req, rec))
}

func TestSignin(t *testing.T) {
	h := testHandler(t)

	rec, err := signinRequest(t, h, `{"username":"scraper","password":"secret"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	// The issued token passes the JWT middleware.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rp/tracks", nil)
	req.Header.Set("Authorization", body["token"])
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		assert.Equal(t, "scraper", c.Get("username"))
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, mw.JWT(testKey)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSigninWrongPassword(t *testing.T) {
	h := testHandler(t)

	_, err := signinRequest(t, h, `{"username":"scraper","password":"nope"}`)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestSigninUnknownUser(t *testing.T) {
	h := testHandler(t)

	_, err := signinRequest(t, h, `{"username":"ghost","password":"secret"}`)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestJWTMissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rp/tracks", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := mw.JWT(testKey)(next)(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
