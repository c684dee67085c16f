package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/mocks"
	"github.com/schoolvoice/schoolvoice/shared"
)

func newTestContext(method string, body string) (shared.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e := echo.New()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, accesscontrol.NewSession("caller", "caller@example.com", false))
	return ctx, rec
}

func TestSchoolControllerCreate(t *testing.T) {
	t.Run("should reject a missing name", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPost, `{}`)

		sut := NewSchoolController(mocks.NewSchoolService(t), mocks.NewMembershipService(t))

		err := sut.Create(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should return the created school", func(t *testing.T) {
		ctx, rec := newTestContext(http.MethodPost, `{"name": "Cool School"}`)

		schoolService := mocks.NewSchoolService(t)
		schoolService.On("CreateSchool", mock.Anything, mock.Anything).Return(nil)

		sut := NewSchoolController(schoolService, mocks.NewMembershipService(t))

		err := sut.Create(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "cool-school")
	})

	t.Run("should translate a conflict to a 409", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPost, `{"name": "Cool School"}`)

		schoolService := mocks.NewSchoolService(t)
		schoolService.On("CreateSchool", mock.Anything, mock.Anything).Return(shared.ErrConflict)

		sut := NewSchoolController(schoolService, mocks.NewMembershipService(t))

		err := sut.Create(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 409, httpErr.Code)
	})
}

func TestSchoolControllerUpdate(t *testing.T) {
	school := models.School{
		Model: models.Model{ID: uuid.New()},
		Name:  "Cool School",
		Slug:  "cool-school",
	}

	t.Run("should refuse to blank the name", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPatch, `{"name": ""}`)
		shared.SetSchool(ctx, school)

		sut := NewSchoolController(mocks.NewSchoolService(t), mocks.NewMembershipService(t))

		err := sut.Update(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("should skip the service when nothing changed", func(t *testing.T) {
		ctx, rec := newTestContext(http.MethodPatch, `{}`)
		shared.SetSchool(ctx, school)

		sut := NewSchoolController(mocks.NewSchoolService(t), mocks.NewMembershipService(t))

		err := sut.Update(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should translate a denied mutation to a 403", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPatch, `{"description": "new description"}`)
		shared.SetSchool(ctx, school)

		schoolService := mocks.NewSchoolService(t)
		schoolService.On("UpdateSchool", mock.Anything, mock.Anything).Return(shared.ErrPermissionDenied)

		sut := NewSchoolController(schoolService, mocks.NewMembershipService(t))

		err := sut.Update(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 403, httpErr.Code)
	})
}

func TestSchoolControllerLeave(t *testing.T) {
	school := models.School{Model: models.Model{ID: uuid.New()}, Name: "Cool School"}

	t.Run("should map the last-admin guard to a 422", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPost, "")
		shared.SetSchool(ctx, school)

		membershipService := mocks.NewMembershipService(t)
		membershipService.On("LeaveSchool", mock.Anything, school.ID).Return(shared.ErrInvalidState)

		sut := NewSchoolController(mocks.NewSchoolService(t), membershipService)

		err := sut.Leave(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 422, httpErr.Code)
	})

	t.Run("should succeed for a regular member", func(t *testing.T) {
		ctx, rec := newTestContext(http.MethodPost, "")
		shared.SetSchool(ctx, school)

		membershipService := mocks.NewMembershipService(t)
		membershipService.On("LeaveSchool", mock.Anything, school.ID).Return(nil)

		sut := NewSchoolController(mocks.NewSchoolService(t), membershipService)

		err := sut.Leave(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}

func TestSchoolControllerWhoAmI(t *testing.T) {
	ctx, rec := newTestContext(http.MethodGet, "")

	sut := NewSchoolController(mocks.NewSchoolService(t), mocks.NewMembershipService(t))

	err := sut.WhoAmI(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "caller@example.com")
}
