package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/mocks"
	"github.com/schoolvoice/schoolvoice/shared"
)

func testContext(session shared.AuthSession) shared.Context {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	ctx := e.NewContext(req, httptest.NewRecorder())
	shared.SetSession(ctx, session)
	return ctx
}

func runInTx(fn func(shared.DB) error) error {
	return fn(nil)
}

func TestCreateSchool(t *testing.T) {
	t.Run("should reject an empty name", func(t *testing.T) {
		sut := NewSchoolService(mocks.NewSchoolRepository(t), mocks.NewMembershipRepository(t), mocks.NewAuthorizer(t))

		err := sut.CreateSchool(testContext(accesscontrol.NewSession("founder", "founder@example.com", false)), &models.School{})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("should create the school and the first admin membership in one transaction", func(t *testing.T) {
		schoolID := uuid.New()

		schoolRepository := mocks.NewSchoolRepository(t)
		schoolRepository.On("Transaction", mock.Anything).Return(runInTx)
		schoolRepository.On("Create", mock.Anything, mock.Anything).Return(func(tx shared.DB, school *models.School) error {
			school.ID = schoolID
			return nil
		})

		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityMembership, shared.ActionCreate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "founder",
			NewRole:  shared.RoleAdmin,
		}).Return(nil)

		var created models.Membership
		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Membership)
		}).Return(nil)

		sut := NewSchoolService(schoolRepository, membershipRepository, authorizer)

		err := sut.CreateSchool(testContext(accesscontrol.NewSession("founder", "founder@example.com", false)), &models.School{Name: "Cool School"})
		assert.NoError(t, err)
		assert.Equal(t, schoolID, created.SchoolID)
		assert.Equal(t, "founder", created.UserID)
		assert.Equal(t, string(shared.RoleAdmin), created.Role)
	})

	t.Run("should map a duplicate key to a conflict", func(t *testing.T) {
		schoolRepository := mocks.NewSchoolRepository(t)
		schoolRepository.On("Transaction", mock.Anything).Return(runInTx)
		schoolRepository.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		sut := NewSchoolService(schoolRepository, mocks.NewMembershipRepository(t), mocks.NewAuthorizer(t))

		err := sut.CreateSchool(testContext(accesscontrol.NewSession("founder", "founder@example.com", false)), &models.School{Name: "Cool School"})
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should roll back when the bootstrap decision is denied", func(t *testing.T) {
		schoolRepository := mocks.NewSchoolRepository(t)
		schoolRepository.On("Transaction", mock.Anything).Return(runInTx)
		schoolRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityMembership, shared.ActionCreate, mock.Anything).Return(shared.ErrPermissionDenied)

		sut := NewSchoolService(schoolRepository, mocks.NewMembershipRepository(t), authorizer)

		err := sut.CreateSchool(testContext(accesscontrol.NewSession("founder", "founder@example.com", false)), &models.School{Name: "Cool School"})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})
}

func TestReadBySlug(t *testing.T) {
	t.Run("should translate a missing record", func(t *testing.T) {
		schoolRepository := mocks.NewSchoolRepository(t)
		schoolRepository.On("ReadBySlug", "nope").Return(models.School{}, gorm.ErrRecordNotFound)

		sut := NewSchoolService(schoolRepository, mocks.NewMembershipRepository(t), mocks.NewAuthorizer(t))

		_, err := sut.ReadBySlug("nope")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestListSchoolsForCaller(t *testing.T) {
	schoolA := uuid.New()
	schoolB := uuid.New()

	membershipRepository := mocks.NewMembershipRepository(t)
	membershipRepository.On("ListByUser", "member-user").Return([]models.Membership{
		{SchoolID: schoolA, UserID: "member-user", Role: "admin"},
		{SchoolID: schoolB, UserID: "member-user", Role: "member"},
	}, nil)

	schoolRepository := mocks.NewSchoolRepository(t)
	schoolRepository.On("List", []uuid.UUID{schoolA, schoolB}).Return([]models.School{
		{Name: "A"}, {Name: "B"},
	}, nil)

	sut := NewSchoolService(schoolRepository, membershipRepository, mocks.NewAuthorizer(t))

	// the listing stays membership-scoped even for super admins
	schools, err := sut.ListSchoolsForCaller(accesscontrol.NewSession("member-user", "member@example.com", true))
	assert.NoError(t, err)
	assert.Len(t, schools, 2)
}

func TestUpdateSchool(t *testing.T) {
	schoolID := uuid.New()

	t.Run("should deny non-admins", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntitySchool, shared.ActionUpdate, shared.RowFacts{SchoolID: schoolID}).Return(shared.ErrPermissionDenied)

		sut := NewSchoolService(mocks.NewSchoolRepository(t), mocks.NewMembershipRepository(t), authorizer)

		err := sut.UpdateSchool(testContext(accesscontrol.NewSession("member-user", "member@example.com", false)), &models.School{Model: models.Model{ID: schoolID}})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("should persist for admins", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntitySchool, shared.ActionUpdate, mock.Anything).Return(nil)

		schoolRepository := mocks.NewSchoolRepository(t)
		schoolRepository.On("Update", mock.Anything, mock.Anything).Return(nil)

		sut := NewSchoolService(schoolRepository, mocks.NewMembershipRepository(t), authorizer)

		err := sut.UpdateSchool(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), &models.School{Model: models.Model{ID: schoolID}, Name: "Renamed"})
		assert.NoError(t, err)
	})
}
