package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/repo"
	"github.com/adelacruz/campus-api/internal/shop/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Users    *UserHTTP
	Products *ProductHTTP
	Orders   *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := &repo.GormRepo{DB: db}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Users:    &UserHTTP{Svc: &service.UserService{Repo: store}},
		Products: &ProductHTTP{Svc: &service.ProductService{Repo: store}},
		Orders:   &OrderHTTP{Svc: &service.OrderService{Repo: store}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
