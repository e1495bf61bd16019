package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adelacruz/campus-api/internal/orgs/models"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
)

func membershipPayload(studentNumber, orgName string) transport.CreateMembershipRequest {
	return transport.CreateMembershipRequest{
		StudentNumber:    studentNumber,
		OrganizationName: orgName,
		AcademicYear:     "2024-2025",
		Semester:         "1st",
		Status:           "active",
		SemesterJoined:   "1st",
		Role:             "member",
	}
}

func TestCreateMembership(t *testing.T) {
	env := newTestEnv(t)
	seedStudent(t, env, "2021-00001")
	seedOrganization(t, env, "UP Circuit")

	rec, c := env.doJSONRequest(http.MethodPost, "/memberships", membershipPayload("2021-00001", "UP Circuit"))
	require.NoError(t, env.Memberships.CreateMembership(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Equal(t, "2021-00001", data["student_number"])
	require.Equal(t, "UP Circuit", data["organization_name"])
	require.Equal(t, "active", data["status"])
}

func TestCreateMembershipStudentNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedOrganization(t, env, "UP Circuit")

	rec, c := env.doJSONRequest(http.MethodPost, "/memberships", membershipPayload("2099-99999", "UP Circuit"))
	require.NoError(t, env.Memberships.CreateMembership(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "Student not found", body.Error)

	var count int64
	env.DB.Model(&models.Membership{}).Count(&count)
	require.Zero(t, count)
}

func TestCreateMembershipOrganizationNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedStudent(t, env, "2021-00001")

	rec, c := env.doJSONRequest(http.MethodPost, "/memberships", membershipPayload("2021-00001", "Ghost Org"))
	require.NoError(t, env.Memberships.CreateMembership(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "Organization not found", body.Error)
}

func TestCreateMembershipDuplicatePair(t *testing.T) {
	env := newTestEnv(t)
	seedStudent(t, env, "2021-00001")
	seedOrganization(t, env, "UP Circuit")

	rec, c := env.doJSONRequest(http.MethodPost, "/memberships", membershipPayload("2021-00001", "UP Circuit"))
	require.NoError(t, env.Memberships.CreateMembership(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// the same pair again, even with different membership details
	second := membershipPayload("2021-00001", "UP Circuit")
	second.Semester = "2nd"
	second.Role = "president"

	rec2, c2 := env.doJSONRequest(http.MethodPost, "/memberships", second)
	require.NoError(t, env.Memberships.CreateMembership(c2))
	require.Equal(t, http.StatusBadRequest, rec2.Code)

	body := decodeEnvelope(t, rec2)
	require.False(t, body.Success)
	require.Equal(t, "Membership already exists", body.Error)

	// exactly one record for the pair
	var count int64
	env.DB.Model(&models.Membership{}).
		Where("student_number = ? AND organization_name = ?", "2021-00001", "UP Circuit").
		Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGetMembershipsEmptyListIsSuccess(t *testing.T) {
	env := newTestEnv(t)
	seedStudent(t, env, "2021-00001")

	rec, c := env.doJSONRequest(http.MethodGet, "/memberships/2021-00001", nil)
	c.SetParamNames("studentNumber")
	c.SetParamValues("2021-00001")
	require.NoError(t, env.Memberships.GetMemberships(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)
	require.JSONEq(t, "[]", string(body.Data))
}

func TestGetMembershipsListsAllForStudent(t *testing.T) {
	env := newTestEnv(t)
	seedStudent(t, env, "2021-00001")
	seedOrganization(t, env, "UP Circuit")
	seedOrganization(t, env, "UP Mountaineers")

	for _, org := range []string{"UP Circuit", "UP Mountaineers"} {
		rec, c := env.doJSONRequest(http.MethodPost, "/memberships", membershipPayload("2021-00001", org))
		require.NoError(t, env.Memberships.CreateMembership(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/memberships/2021-00001", nil)
	c.SetParamNames("studentNumber")
	c.SetParamValues("2021-00001")
	require.NoError(t, env.Memberships.GetMemberships(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)

	var memberships []models.Membership
	require.NoError(t, json.Unmarshal(body.Data, &memberships))
	require.Len(t, memberships, 2)
}

func TestGetMembershipsStudentNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/memberships/2099-99999", nil)
	c.SetParamNames("studentNumber")
	c.SetParamValues("2099-99999")
	require.NoError(t, env.Memberships.GetMemberships(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
