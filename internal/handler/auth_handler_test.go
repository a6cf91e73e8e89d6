package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	"github.com/edutrackr/edutrackr-api/internal/service"
	"github.com/edutrackr/edutrackr-api/pkg/jobs"
)

type recordingDispatcher struct {
	jobs []jobs.Job
}

func (d *recordingDispatcher) Enqueue(job jobs.Job) error {
	d.jobs = append(d.jobs, job)
	return nil
}

func newAuthFixture(t *testing.T) (*AuthHandler, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	svc := service.NewAuthService(
		repository.NewFlowRepository(time.Minute),
		repository.NewSessionRepository(),
		dispatcher,
		nil,
		nil,
		service.AuthConfig{
			TokenSecret: "test-secret",
			TokenExpiry: time.Hour,
			Issuer:      "edutrackr-test",
		},
	)
	return NewAuthHandler(svc, nil), dispatcher
}

func flowID(t *testing.T, envelope responseEnvelope) string {
	t.Helper()
	var flow struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &flow))
	require.NotEmpty(t, flow.ID)
	return flow.ID
}

func TestAuthHandler_FullStudentLogin(t *testing.T) {
	handler, dispatcher := newAuthFixture(t)

	c, rec := jsonContext(t, http.MethodPost, "/auth/flows", nil)
	handler.StartFlow(c)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := flowID(t, decodeEnvelope(t, rec))

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/role", models.SelectRoleRequest{Role: models.RoleStudent})
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.SelectRole(c)
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/details", models.LoginForm{
		Name: "Alex Johnson", ID: "STU-001", Section: "12-A",
	})
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.SubmitDetails(c)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dispatcher.jobs, 1)

	payload, ok := dispatcher.jobs[0].Payload.(map[string]string)
	require.True(t, ok)
	code := payload["code"]
	require.Len(t, code, 4)

	for i, digit := range code {
		c, rec = jsonContext(t, http.MethodPatch, "/auth/flows/"+id+"/code", models.CodeDigitRequest{
			Position: i, Value: string(digit),
		})
		c.Params = gin.Params{{Key: "id", Value: id}}
		handler.UpdateCodeDigit(c)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/verify", nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.VerifyCode(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.LoginResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, models.RoleStudent, result.User.Role)
	require.NotNil(t, result.User.Gamification)
	assert.Equal(t, 12, result.User.Gamification.Level)
}

func TestAuthHandler_VerifyIncompleteCode(t *testing.T) {
	handler, _ := newAuthFixture(t)

	c, rec := jsonContext(t, http.MethodPost, "/auth/flows", nil)
	handler.StartFlow(c)
	id := flowID(t, decodeEnvelope(t, rec))

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/role", models.SelectRoleRequest{Role: models.RoleParent})
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.SelectRole(c)
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/details", models.LoginForm{
		Name: "Mrs. Johnson", Phone: "555-0134",
	})
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.SubmitDetails(c)
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/verify", nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.VerifyCode(c)
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
}

func TestAuthHandler_UnknownFlow(t *testing.T) {
	handler, _ := newAuthFixture(t)

	c, rec := jsonContext(t, http.MethodGet, "/auth/flows/ghost", nil)
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}
	handler.GetFlow(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHandler_SelectRoleRejectsBadPayload(t *testing.T) {
	handler, _ := newAuthFixture(t)

	c, rec := jsonContext(t, http.MethodPost, "/auth/flows", nil)
	handler.StartFlow(c)
	id := flowID(t, decodeEnvelope(t, rec))

	c, rec = jsonContext(t, http.MethodPost, "/auth/flows/"+id+"/role", "not-json-object")
	c.Params = gin.Params{{Key: "id", Value: id}}
	handler.SelectRole(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_MeRequiresClaims(t *testing.T) {
	handler, _ := newAuthFixture(t)

	c, rec := jsonContext(t, http.MethodGet, "/auth/me", nil)
	handler.Me(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
