package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// TestTeamRepositoryList_LeaderFirstSQL pins the ordering clause the team
// listing relies on: leader first, then id ascending.
func TestTeamRepositoryList_LeaderFirstSQL(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "role", "status", "avatar", "description"}).
		AddRow(3, "Jamil", "Leader", "working", nil, nil).
		AddRow(1, "Oto", "Editor", "active", nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "team" ORDER BY CASE WHEN role = 'Leader' THEN 0 ELSE 1 END, id ASC`,
	)).WillReturnRows(rows)

	members, err := NewTeamRepository(db).List()
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Jamil", members[0].Name)
	assert.EqualValues(t, 3, members[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryFindByName(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "role", "status"}).
		AddRow(1, "Jamil", "Leader", "working")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "team" WHERE name = $1`)).
		WithArgs("Jamil", 1).
		WillReturnRows(rows)

	member, err := NewTeamRepository(db).FindByName("Jamil")
	require.NoError(t, err)
	assert.Equal(t, "Leader", member.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryFindByName_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "team" WHERE name = $1`)).
		WithArgs("Jamil", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "status"}))

	_, err := NewTeamRepository(db).FindByName("Jamil")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
