package accesscontrol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/schoolvoice/schoolvoice/mocks"
	"github.com/schoolvoice/schoolvoice/shared"
)

func TestDecideRequiresAuthentication(t *testing.T) {
	directory := mocks.NewMembershipDirectory(t)
	sut := NewAuthorizer(directory)

	err := sut.Decide(nil, NoSession, shared.EntitySchool, shared.ActionRead, shared.RowFacts{SchoolID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)

	err = sut.Decide(nil, nil, shared.EntitySchool, shared.ActionRead, shared.RowFacts{SchoolID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)
}

func TestDecideSuperAdminOverride(t *testing.T) {
	// a platform super admin is allowed everything without a single
	// membership lookup, so the directory mock has no expectations.
	directory := mocks.NewMembershipDirectory(t)
	sut := NewAuthorizer(directory)

	caller := NewSession("root-user", "root@platform.example", true)
	schoolID := uuid.New()

	for _, entity := range []shared.Entity{shared.EntitySchool, shared.EntityMembership, shared.EntityInvitation, shared.EntityToneProfile, shared.EntityContentDraft} {
		for _, action := range []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionUpdate, shared.ActionDelete} {
			err := sut.Decide(nil, caller, entity, action, shared.RowFacts{SchoolID: schoolID, UserID: "someone-else"})
			assert.NoError(t, err, "entity %s action %s", entity, action)
		}
	}
}

func TestDecideHidesDeniedReads(t *testing.T) {
	schoolID := uuid.New()
	caller := NewSession("outsider", "outsider@example.com", false)

	directory := mocks.NewMembershipDirectory(t)
	directory.On("RoleOf", mock.Anything, schoolID, "outsider").Return(shared.Role(""), false, nil)

	sut := NewAuthorizer(directory)

	// a denied read must be indistinguishable from a missing row
	err := sut.Decide(nil, caller, shared.EntitySchool, shared.ActionRead, shared.RowFacts{SchoolID: schoolID})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// a denied mutation is a plain permission error
	err = sut.Decide(nil, caller, shared.EntitySchool, shared.ActionUpdate, shared.RowFacts{SchoolID: schoolID})
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
}

func TestMembershipBootstrapRule(t *testing.T) {
	schoolID := uuid.New()
	caller := NewSession("founder", "founder@example.com", false)

	t.Run("caller may claim the first admin slot of an empty school", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		directory.On("HasAnyMembership", mock.Anything, schoolID).Return(false, nil)

		sut := NewAuthorizer(directory)
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionCreate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "founder",
			NewRole:  shared.RoleAdmin,
		})
		assert.NoError(t, err)
	})

	t.Run("bootstrap does not apply once the school has members", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		directory.On("HasAnyMembership", mock.Anything, schoolID).Return(true, nil)
		directory.On("RoleOf", mock.Anything, schoolID, "founder").Return(shared.Role(""), false, nil)

		sut := NewAuthorizer(directory)
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionCreate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "founder",
			NewRole:  shared.RoleAdmin,
		})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("bootstrap never grants a member role row", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		directory.On("RoleOf", mock.Anything, schoolID, "founder").Return(shared.Role(""), false, nil)

		sut := NewAuthorizer(directory)
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionCreate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "founder",
			NewRole:  shared.RoleMember,
		})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("an existing admin may add members", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		directory.On("RoleOf", mock.Anything, schoolID, "founder").Return(shared.RoleAdmin, true, nil)

		sut := NewAuthorizer(directory)
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionCreate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "new-member",
			NewRole:  shared.RoleMember,
		})
		assert.NoError(t, err)
	})
}

func TestMembershipSelfProtection(t *testing.T) {
	schoolID := uuid.New()
	caller := NewSession("admin-user", "admin@example.com", false)

	directory := mocks.NewMembershipDirectory(t)
	directory.On("RoleOf", mock.Anything, schoolID, "admin-user").Return(shared.RoleAdmin, true, nil)

	sut := NewAuthorizer(directory)

	t.Run("admins cannot change their own role", func(t *testing.T) {
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionUpdate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "admin-user",
			NewRole:  shared.RoleMember,
		})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("admins cannot remove themselves", func(t *testing.T) {
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionDelete, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "admin-user",
		})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})

	t.Run("admins may mutate other member rows", func(t *testing.T) {
		err := sut.Decide(nil, caller, shared.EntityMembership, shared.ActionUpdate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "other-user",
			NewRole:  shared.RoleAdmin,
		})
		assert.NoError(t, err)

		err = sut.Decide(nil, caller, shared.EntityMembership, shared.ActionDelete, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "other-user",
		})
		assert.NoError(t, err)
	})
}

func TestInvitationRules(t *testing.T) {
	schoolID := uuid.New()

	t.Run("the invitee may read their own invitation regardless of membership", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		sut := NewAuthorizer(directory)

		caller := NewSession("invitee", "Invitee@Example.COM", false)
		err := sut.Decide(nil, caller, shared.EntityInvitation, shared.ActionRead, shared.RowFacts{
			SchoolID: schoolID,
			Email:    "invitee@example.com",
		})
		assert.NoError(t, err)
	})

	t.Run("members cannot read foreign invitations", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		directory.On("RoleOf", mock.Anything, schoolID, "member-user").Return(shared.RoleMember, true, nil)

		sut := NewAuthorizer(directory)
		caller := NewSession("member-user", "member@example.com", false)
		err := sut.Decide(nil, caller, shared.EntityInvitation, shared.ActionRead, shared.RowFacts{
			SchoolID: schoolID,
			Email:    "someone-else@example.com",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invitations are immutable", func(t *testing.T) {
		directory := mocks.NewMembershipDirectory(t)
		sut := NewAuthorizer(directory)

		caller := NewSession("root-adjacent", "admin@example.com", false)

		err := sut.Decide(nil, caller, shared.EntityInvitation, shared.ActionUpdate, shared.RowFacts{SchoolID: schoolID})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})
}

func TestToneProfileRules(t *testing.T) {
	schoolID := uuid.New()

	directory := mocks.NewMembershipDirectory(t)
	directory.On("RoleOf", mock.Anything, schoolID, "member-user").Return(shared.RoleMember, true, nil)

	sut := NewAuthorizer(directory)
	caller := NewSession("member-user", "member@example.com", false)

	err := sut.Decide(nil, caller, shared.EntityToneProfile, shared.ActionRead, shared.RowFacts{SchoolID: schoolID})
	assert.NoError(t, err)

	err = sut.Decide(nil, caller, shared.EntityToneProfile, shared.ActionCreate, shared.RowFacts{SchoolID: schoolID})
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
}

func TestContentDraftAuthorOnlyMutations(t *testing.T) {
	schoolID := uuid.New()

	directory := mocks.NewMembershipDirectory(t)
	directory.On("RoleOf", mock.Anything, schoolID, "author").Return(shared.RoleMember, true, nil)

	sut := NewAuthorizer(directory)
	caller := NewSession("author", "author@example.com", false)

	t.Run("authors edit and delete their own drafts", func(t *testing.T) {
		err := sut.Decide(nil, caller, shared.EntityContentDraft, shared.ActionUpdate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "author",
		})
		assert.NoError(t, err)

		err = sut.Decide(nil, caller, shared.EntityContentDraft, shared.ActionDelete, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "author",
		})
		assert.NoError(t, err)
	})

	t.Run("foreign drafts are read-only", func(t *testing.T) {
		err := sut.Decide(nil, caller, shared.EntityContentDraft, shared.ActionRead, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "someone-else",
		})
		assert.NoError(t, err)

		err = sut.Decide(nil, caller, shared.EntityContentDraft, shared.ActionUpdate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "someone-else",
		})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)

		err = sut.Decide(nil, caller, shared.EntityContentDraft, shared.ActionDelete, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   "someone-else",
		})
		assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	})
}

func TestSchoolACLShortCircuitsSuperAdmin(t *testing.T) {
	directory := mocks.NewMembershipDirectory(t)
	provider := NewSchoolACLProvider(directory)

	acl := provider.ForSchool(uuid.New())

	isMember, err := acl.IsMember(NewSession("root", "root@platform.example", true))
	assert.NoError(t, err)
	assert.True(t, isMember)

	isAdmin, err := acl.IsAdmin(NewSession("root", "root@platform.example", true))
	assert.NoError(t, err)
	assert.True(t, isAdmin)
}
