package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetUserIDAcceptsCommonTypes(t *testing.T) {
	for _, v := range []any{uint64(7), int(7), int64(7), float64(7), "7"} {
		c := testContext(t)
		c.Set("user_id", v)
		id, err := getUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)
	}
}

func TestGetUserIDRejectsMissingOrBad(t *testing.T) {
	c := testContext(t)
	_, err := getUserID(c)
	assert.Error(t, err)

	c.Set("user_id", "not-a-number")
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestParseDatePtr(t *testing.T) {
	got, ok := parseDatePtr(nil)
	require.True(t, ok)
	assert.Nil(t, got)

	s := "2026-04-15"
	got, ok = parseDatePtr(&s)
	require.True(t, ok)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), *got)

	bad := "15/04/2026"
	_, ok = parseDatePtr(&bad)
	assert.False(t, ok)
}

func TestFirstValidPriorityOrder(t *testing.T) {
	a := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, &a, firstValid(&a, &b))
	assert.Equal(t, &b, firstValid(nil, &b, &a))
	assert.Nil(t, firstValid(nil, nil, nil))
}
