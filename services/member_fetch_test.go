package services

import (
	"testing"

	"github.com/google/uuid"
	client "github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/mocks"
	"github.com/schoolvoice/schoolvoice/shared"
)

func TestListMembers(t *testing.T) {
	schoolID := uuid.New()

	t.Run("a plain member is refused, not told the roster is missing", func(t *testing.T) {
		// the school itself was already resolved through the scoped route,
		// so hiding the roster behind a 404 would contradict what the
		// caller can see
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityMembership, shared.ActionRead, shared.RowFacts{SchoolID: schoolID}).Return(shared.ErrNotFound)

		sut := NewMembershipService(mocks.NewMembershipRepository(t), mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), authorizer, mocks.NewIdentityClient(t))

		_, err := sut.ListMembers(testContext(accesscontrol.NewSession("member-user", "member@example.com", false)), schoolID)
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("joins membership rows with identity records", func(t *testing.T) {
		authorizer := mocks.NewAuthorizer(t)
		authorizer.On("Decide", mock.Anything, mock.Anything, shared.EntityMembership, shared.ActionRead, mock.Anything).Return(nil)

		membershipRepository := mocks.NewMembershipRepository(t)
		membershipRepository.On("ListBySchool", schoolID).Return([]models.Membership{
			{SchoolID: schoolID, UserID: "admin-user", Role: string(shared.RoleAdmin)},
			{SchoolID: schoolID, UserID: "member-user", Role: string(shared.RoleMember)},
		}, nil)

		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("ListIdentities", mock.Anything, []string{"admin-user", "member-user"}).Return([]client.Identity{
			{Id: "admin-user"},
			{Id: "member-user"},
		}, nil)

		sut := NewMembershipService(membershipRepository, mocks.NewInvitationRepository(t), mocks.NewSchoolRepository(t), authorizer, identityClient)

		users, err := sut.ListMembers(testContext(accesscontrol.NewSession("admin-user", "admin@example.com", false)), schoolID)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "admin-user", users[0].ID)
		assert.Equal(t, string(shared.RoleAdmin), users[0].Role)
	})
}
