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

	"github.com/adelacruz/campus-api/internal/orgs/models"
	"github.com/adelacruz/campus-api/internal/orgs/repo"
	"github.com/adelacruz/campus-api/internal/orgs/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Students      *StudentHTTP
	Organizations *OrganizationHTTP
	Memberships   *MembershipHTTP
	Fees          *FeeHTTP
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
		T:             t,
		E:             echo.New(),
		DB:            db,
		Students:      &StudentHTTP{Svc: &service.StudentService{Repo: store}},
		Organizations: &OrganizationHTTP{Svc: &service.OrganizationService{Repo: store}},
		Memberships:   &MembershipHTTP{Svc: &service.MembershipService{Repo: store}},
		Fees:          &FeeHTTP{Svc: &service.FeeService{Repo: store}},
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

type envelope struct {
	Success       bool            `json:"success"`
	Error         string          `json:"error"`
	TransactionID uint            `json:"transactionId"`
	Data          json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func seedStudent(t *testing.T, env *testEnv, studentNumber string) {
	t.Helper()
	student := models.Student{
		StudentNumber: studentNumber,
		FirstName:     "Jose",
		LastName:      "Rizal",
		DegreeProgram: "BS Computer Science",
		Gender:        "M",
		Birthdate:     "2003-06-19",
		Username:      "jrizal",
	}
	require.NoError(t, env.DB.Create(&student).Error)
}

func seedOrganization(t *testing.T, env *testEnv, name string) {
	t.Helper()
	org := models.Organization{OrganizationName: name, Classification: "academic"}
	require.NoError(t, env.DB.Create(&org).Error)
}

func strPtr(s string) *string { return &s }
