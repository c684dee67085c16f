package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/mocks"
	"github.com/schoolvoice/schoolvoice/shared"
)

func TestInviteMember(t *testing.T) {
	schoolID := uuid.New()

	t.Run("should deny non-admin callers", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityInvitation, shared.ActionCreate, shared.RowFacts{SchoolID: schoolID}).Return(shared.ErrPermissionDenied)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		_, err := sut.InviteMember(testContext(accesscontrol.NewSession("member-user", "member@example.com", false)), schoolID, "new@example.com", shared.RoleMember)
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("should mint a fresh single-use token with a use-by date", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityInvitation, shared.ActionCreate, mock.Anything).Return(nil)

		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("DeleteExpiredPending", mock.Anything, schoolID, "new@example.com").Return(nil)
		invitationRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		invitation, err := sut.InviteMember(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, "new@example.com", shared.RoleMember)
		assert.NoError(t, err)
		assert.NotEmpty(t, invitation.Token)
		assert.Equal(t, "admin-user", invitation.CreatedBy)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), invitation.ExpiresAt, time.Minute)
	})

	t.Run("should clear an expired invitation before reserving the slot again", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityInvitation, shared.ActionCreate, mock.Anything).Return(nil)

		cleared := false
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("DeleteExpiredPending", mock.Anything, schoolID, "new@example.com").Return(func(shared.DB, uuid.UUID, string) error {
			cleared = true
			return nil
		})
		invitationRepository.On("Create", mock.Anything, mock.Anything).Return(func(shared.DB, *models.Invitation) error {
			assert.True(t, cleared, "the expired row must be gone before the insert hits the unique index")
			return nil
		})

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		_, err := sut.InviteMember(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, "new@example.com", shared.RoleMember)
		assert.NoError(t, err)
	})

	t.Run("should report a pending duplicate as a conflict", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityInvitation, shared.ActionCreate, mock.Anything).Return(nil)

		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("DeleteExpiredPending", mock.Anything, schoolID, "new@example.com").Return(nil)
		invitationRepository.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		_, err := sut.InviteMember(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, "new@example.com", shared.RoleMember)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}

func TestAcceptInvitation(t *testing.T) {
	schoolID := uuid.New()

	pendingInvitation := func() models.Invitation {
		return models.Invitation{
			Model:     models.Model{ID: uuid.New()},
			SchoolID:  schoolID,
			Token:     "tok-123",
			Email:     "invitee@example.com",
			Role:      string(shared.RoleMember),
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
	}

	t.Run("should redeem a pending invitation and create the membership", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("FindByTokenForUpdate", mock.Anything, "tok-123").Return(pendingInvitation(), nil)

		var accepted models.Invitation
		invitationRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			accepted = *args.Get(1).(*models.Invitation)
		}).Return(nil)

		var created models.Membership
		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Membership)
		}).Return(nil)

		schoolRepository := mocks.NewSchoolRepository(t)
		schoolRepository.On("Read", schoolID).Return(models.School{Name: "Cool School"}, nil)

		sut := NewMembershipService(membershipRepository, invitationRepository, schoolRepository, mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		// case-insensitive email check
		school, err := sut.AcceptInvitation(testContext(accesscontrol.NewSession("invitee", "Invitee@Example.COM", false)), "tok-123")
		assert.NoError(t, err)
		assert.Equal(t, "Cool School", school.Name)
		assert.NotNil(t, accepted.AcceptedAt)
		assert.Equal(t, "invitee", created.UserID)
		assert.Equal(t, string(shared.RoleMember), created.Role)
		assert.Equal(t, schoolID, created.SchoolID)
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("FindByTokenForUpdate", mock.Anything, "missing").Return(models.Invitation{}, gorm.ErrRecordNotFound)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		_, err := sut.AcceptInvitation(testContext(accesscontrol.NewSession("invitee", "invitee@example.com", false)), "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should reject a spent invitation", func(t *testing.T) {
		invitation := pendingInvitation()
		now := time.Now()
		invitation.AcceptedAt = &now

		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("FindByTokenForUpdate", mock.Anything, "tok-123").Return(invitation, nil)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		_, err := sut.AcceptInvitation(testContext(accesscontrol.NewSession("invitee", "invitee@example.com", false)), "tok-123")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("should check expiry at use time", func(t *testing.T) {
		invitation := pendingInvitation()
		invitation.ExpiresAt = time.Now().Add(-time.Hour)

		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("FindByTokenForUpdate", mock.Anything, "tok-123").Return(invitation, nil)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		_, err := sut.AcceptInvitation(testContext(accesscontrol.NewSession("invitee", "invitee@example.com", false)), "tok-123")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("should reject a caller with a different email", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("FindByTokenForUpdate", mock.Anything, "tok-123").Return(pendingInvitation(), nil)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		_, err := sut.AcceptInvitation(testContext(accesscontrol.NewSession("stranger", "stranger@example.com", false)), "tok-123")
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("should report an existing membership as a conflict", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Return(runInTx)
		invitationRepository.On("FindByTokenForUpdate", mock.Anything, "tok-123").Return(pendingInvitation(), nil)
		invitationRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		sut := NewMembershipService(membershipRepository, invitationRepository, mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		_, err := sut.AcceptInvitation(testContext(accesscontrol.NewSession("invitee", "invitee@example.com", false)), "tok-123")
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}

func TestRevokeInvitation(t *testing.T) {
	schoolID := uuid.New()
	invitationID := uuid.New()

	t.Run("should not leak invitations of other schools", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityInvitation, shared.ActionDelete, mock.Anything).Return(nil)

		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Read", invitationID).Return(models.Invitation{SchoolID: uuid.New()}, nil)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		err := sut.RevokeInvitation(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, invitationID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should refuse to revoke an accepted invitation", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityInvitation, shared.ActionDelete, mock.Anything).Return(nil)

		now := time.Now()
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Read", invitationID).Return(models.Invitation{SchoolID: schoolID, AcceptedAt: &now}, nil)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), invitationRepository, mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		err := sut.RevokeInvitation(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, invitationID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestLeaveSchool(t *testing.T) {
	schoolID := uuid.New()

	t.Run("the last admin cannot leave", func(t *testing.T) {
		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)
		membershipRepository.On("FindBySchoolAndUser", mock.Anything, schoolID, "admin-user").Return(models.Membership{
			Model:    models.Model{ID: uuid.New()},
			SchoolID: schoolID,
			UserID:   "admin-user",
			Role:     string(shared.RoleAdmin),
		}, nil)
		membershipRepository.On("ListAdminsForUpdate", mock.Anything, schoolID).Return([]models.Membership{
			{SchoolID: schoolID, UserID: "admin-user", Role: string(shared.RoleAdmin)},
		}, nil)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		err := sut.LeaveSchool(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("the slower of two concurrently leaving admins is refused", func(t *testing.T) {
		// the other admin passed the guard first and deleted their row, so
		// the locked re-read returns only the caller once the lock is granted
		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)
		membershipRepository.On("FindBySchoolAndUser", mock.Anything, schoolID, "admin-b").Return(models.Membership{
			Model:    models.Model{ID: uuid.New()},
			SchoolID: schoolID,
			UserID:   "admin-b",
			Role:     string(shared.RoleAdmin),
		}, nil)
		membershipRepository.On("ListAdminsForUpdate", mock.Anything, schoolID).Return([]models.Membership{
			{SchoolID: schoolID, UserID: "admin-b", Role: string(shared.RoleAdmin)},
		}, nil)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		err := sut.LeaveSchool(testContext(accesscontrol.NewSession("admin-b", "admin-b@example.com", false)), schoolID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		membershipRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("an admin may leave while another admin remains", func(t *testing.T) {
		membershipID := uuid.New()

		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)
		membershipRepository.On("FindBySchoolAndUser", mock.Anything, schoolID, "admin-user").Return(models.Membership{
			Model:    models.Model{ID: membershipID},
			SchoolID: schoolID,
			UserID:   "admin-user",
			Role:     string(shared.RoleAdmin),
		}, nil)
		membershipRepository.On("ListAdminsForUpdate", mock.Anything, schoolID).Return([]models.Membership{
			{SchoolID: schoolID, UserID: "admin-user", Role: string(shared.RoleAdmin)},
			{SchoolID: schoolID, UserID: "other-admin", Role: string(shared.RoleAdmin)},
		}, nil)
		membershipRepository.On("Delete", mock.Anything, membershipID).Return(nil)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		err := sut.LeaveSchool(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID)
		assert.NoError(t, err)
	})

	t.Run("members leave without further checks", func(t *testing.T) {
		membershipID := uuid.New()

		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)
		membershipRepository.On("FindBySchoolAndUser", mock.Anything, schoolID, "member-user").Return(models.Membership{
			Model:    models.Model{ID: membershipID},
			SchoolID: schoolID,
			UserID:   "member-user",
			Role:     string(shared.RoleMember),
		}, nil)
		membershipRepository.On("Delete", mock.Anything, membershipID).Return(nil)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		err := sut.LeaveSchool(testContext(accesscontrol.NewSession("member-user", "member@example.com", false)), schoolID)
		assert.NoError(t, err)
	})

	t.Run("leaving a school without a membership is a 404", func(t *testing.T) {
		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)
		membershipRepository.On("FindBySchoolAndUser", mock.Anything, schoolID, "outsider").Return(models.Membership{}, gorm.ErrRecordNotFound)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), mocks.NewAuthorizer(t), mocks.NewIdentityClient(t))

		err := sut.LeaveSchool(testContext(accesscontrol.NewSession("outsider", "outsider@example.com", false)), schoolID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestChangeRole(t *testing.T) {
	schoolID := uuid.New()

	t.Run("should update the target role inside the decision transaction", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityMembership, shared.ActionUpdate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "target-user",
			NewRole:  shared.RoleAdmin,
		}).Return(nil)

		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)
		membershipRepository.On("FindBySchoolAndUser", mock.Anything, schoolID, "target-user").Return(models.Membership{
			SchoolID: schoolID,
			UserID:   "target-user",
			Role:     string(shared.RoleMember),
		}, nil)

		var saved models.Membership
		membershipRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = *args.Get(1).(*models.Membership)
		}).Return(nil)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		err := sut.ChangeRole(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, "target-user", shared.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, string(shared.RoleAdmin), saved.Role)
	})

	t.Run("a denied decision aborts before any lookup", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityMembership, shared.ActionUpdate, mock.Anything).Return(shared.ErrPermissionDenied)

		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("Transaction", mock.Anything).Return(runInTx)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		err := sut.ChangeRole(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID, "admin-user", shared.RoleMember)
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})
}
