package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/schoolvoice/schoolvoice/shared"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, db
}

func TestRoleOf(t *testing.T) {
	schoolID := uuid.New()

	t.Run("resolves the stored role", func(t *testing.T) {
		gormDB, mock, db := newMockDB(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "school_id", "user_id", "role"}).
			AddRow(uuid.New(), time.Now(), time.Now(), schoolID, "admin-user", "admin")

		mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE school_id = \$1 AND user_id = \$2`).
			WithArgs(schoolID, "admin-user", 1).
			WillReturnRows(rows)

		repository := NewMembershipRepository(gormDB)

		role, ok, err := repository.RoleOf(nil, schoolID, "admin-user")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, shared.RoleAdmin, role)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a missing membership without an error", func(t *testing.T) {
		gormDB, mock, db := newMockDB(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE school_id = \$1 AND user_id = \$2`).
			WithArgs(schoolID, "outsider", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		repository := NewMembershipRepository(gormDB)

		_, ok, err := repository.RoleOf(nil, schoolID, "outsider")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a corrupted role value", func(t *testing.T) {
		gormDB, mock, db := newMockDB(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "school_id", "user_id", "role"}).
			AddRow(uuid.New(), schoolID, "weird-user", "superuser")

		mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE school_id = \$1 AND user_id = \$2`).
			WithArgs(schoolID, "weird-user", 1).
			WillReturnRows(rows)

		repository := NewMembershipRepository(gormDB)

		_, _, err := repository.RoleOf(nil, schoolID, "weird-user")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestHasAnyMembership(t *testing.T) {
	schoolID := uuid.New()

	gormDB, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "memberships" WHERE school_id = \$1`).
		WithArgs(schoolID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repository := NewMembershipRepository(gormDB)

	hasMembers, err := repository.HasAnyMembership(nil, schoolID)
	require.NoError(t, err)
	assert.False(t, hasMembers)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAdminsForUpdate(t *testing.T) {
	schoolID := uuid.New()

	gormDB, mock, db := newMockDB(t)
	defer db.Close()

	// the rows must be locked, not just read: the last-admin guard depends
	// on concurrent leavers serializing on these rows
	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE school_id = \$1 AND role = \$2 FOR UPDATE`).
		WithArgs(schoolID, "admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "school_id", "user_id", "role"}).
			AddRow(uuid.New(), schoolID, "admin-a", "admin").
			AddRow(uuid.New(), schoolID, "admin-b", "admin"))

	repository := NewMembershipRepository(gormDB)

	admins, err := repository.ListAdminsForUpdate(nil, schoolID)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "admin-a", admins[0].UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}
