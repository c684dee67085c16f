package services

import (
	"testing"

	client "github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/mocks"
	"github.com/schoolvoice/schoolvoice/shared"
)

func newAdminService(t *testing.T,
	schoolRepository *mocks.SchoolRepository,
	membershipRepository *mocks.MembershipRepository,
	toneProfileRepository *mocks.ToneProfileRepository,
	contentDraftRepository *mocks.ContentDraftRepository,
	auditActionRepository *mocks.AuditActionRepository,
	identityClient *mocks.IdentityClient,
) *AdminService {
	t.Helper()
	return NewAdminService(schoolRepository, membershipRepository, toneProfileRepository, contentDraftRepository, auditActionRepository, identityClient)
}

func TestAdminFacadePrivilegeCheck(t *testing.T) {
	sut := newAdminService(t,
		mocks.NewSchoolRepository(t),
		mocks.NewMembershipRepository(t),
		mocks.NewToneProfileRepository(t),
		mocks.NewContentDraftRepository(t),
		mocks.NewAuditActionRepository(t),
		mocks.NewIdentityClient(t),
	)

	regular := accesscontrol.NewSession("regular-user", "regular@example.com", false)

	// tenant admins get an error, never an empty cross-tenant result
	_, err := sut.ListAllSchools(regular)
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)

	_, err = sut.GetStatistics(regular)
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)

	_, err = sut.ListAuditActions(regular, 10)
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)

	_, err = sut.ListAllSchools(accesscontrol.NoSession)
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)
}

func TestGetStatistics(t *testing.T) {
	schoolRepository := mocks.NewSchoolRepository(t)
	schoolRepository.On("CountAll").Return(int64(3), nil)

	membershipRepository := mocks.NewMembershipRepository(t)
	membershipRepository.On("CountDistinctUsers").Return(int64(42), nil)

	toneProfileRepository := mocks.NewToneProfileRepository(t)
	toneProfileRepository.On("CountAll").Return(int64(7), nil)

	contentDraftRepository := mocks.NewContentDraftRepository(t)
	contentDraftRepository.On("CountAll").Return(int64(19), nil)

	sut := newAdminService(t, schoolRepository, membershipRepository, toneProfileRepository, contentDraftRepository, mocks.NewAuditActionRepository(t), mocks.NewIdentityClient(t))

	stats, err := sut.GetStatistics(accesscontrol.NewSession("root", "root@platform.example", true))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.Schools)
	assert.Equal(t, int64(42), stats.Users)
	assert.Equal(t, int64(7), stats.ToneProfiles)
	assert.Equal(t, int64(19), stats.ContentDrafts)
}

func TestSetPlatformSuperAdmin(t *testing.T) {
	t.Run("should flag the target identity and append an audit action", func(t *testing.T) {
		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("FindIdentityByEmail", mock.Anything, "target@example.com").Return(&client.Identity{Id: "target-user"}, nil)
		identityClient.On("SetSuperAdminFlag", mock.Anything, "target-user", true).Return(nil)

		var audited models.AuditAction
		auditActionRepository := mocks.NewAuditActionRepository(t)
		auditActionRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			audited = *args.Get(1).(*models.AuditAction)
		}).Return(nil)

		sut := newAdminService(t, mocks.NewSchoolRepository(t), mocks.NewMembershipRepository(t), mocks.NewToneProfileRepository(t), mocks.NewContentDraftRepository(t), auditActionRepository, identityClient)

		err := sut.SetPlatformSuperAdmin(testContext(accesscontrol.NewSession("root", "root@platform.example", true)), "target@example.com", true)
		assert.NoError(t, err)
		assert.Equal(t, "root", audited.AdminID)
		assert.Equal(t, models.AuditActionGrantSuperAdmin, audited.ActionType)
		assert.Equal(t, "target-user", *audited.AffectedUserID)
	})

	t.Run("should refuse to revoke the caller's own flag", func(t *testing.T) {
		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("FindIdentityByEmail", mock.Anything, "root@platform.example").Return(&client.Identity{Id: "root"}, nil)

		sut := newAdminService(t, mocks.NewSchoolRepository(t), mocks.NewMembershipRepository(t), mocks.NewToneProfileRepository(t), mocks.NewContentDraftRepository(t), mocks.NewAuditActionRepository(t), identityClient)

		err := sut.SetPlatformSuperAdmin(testContext(accesscontrol.NewSession("root", "root@platform.example", true)), "root@platform.example", false)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("should deny regular callers before touching the identity provider", func(t *testing.T) {
		sut := newAdminService(t, mocks.NewSchoolRepository(t), mocks.NewMembershipRepository(t), mocks.NewToneProfileRepository(t), mocks.NewContentDraftRepository(t), mocks.NewAuditActionRepository(t), mocks.NewIdentityClient(t))

		err := sut.SetPlatformSuperAdmin(testContext(accesscontrol.NewSession("regular-user", "regular@example.com", false)), "target@example.com", true)
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})
}

func TestListAuditActionsClampsLimit(t *testing.T) {
	auditActionRepository := mocks.NewAuditActionRepository(t)
	auditActionRepository.On("ListRecent", 100).Return([]models.AuditAction{}, nil)

	sut := newAdminService(t, mocks.NewSchoolRepository(t), mocks.NewMembershipRepository(t), mocks.NewToneProfileRepository(t), mocks.NewContentDraftRepository(t), auditActionRepository, mocks.NewIdentityClient(t))

	root := accesscontrol.NewSession("root", "root@platform.example", true)

	_, err := sut.ListAuditActions(root, -5)
	assert.NoError(t, err)

	_, err = sut.ListAuditActions(root, 10000)
	assert.NoError(t, err)
}
