package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"luppolo.dev/Luppolo/pkg/model"
	"luppolo.dev/Luppolo/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *UserTestSuite) TestAddUser_CreatesWithFreshUUID() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	suite.mock.ExpectCommit()

	user, err := suite.repository.AddUser(context.Background(), "giulia", "giulia@luppolo.dev", model.RolePubOwner)

	suite.Require().NoError(err)
	suite.Equal(uint(7), user.ID)
	suite.Equal("giulia", user.Username)
	suite.Equal(model.RolePubOwner, user.Role)
	suite.NotEqual(uuid.Nil, user.UUID)
}

func (suite *UserTestSuite) TestGetUserByUUID_ReturnsMatch() {
	userUUID := uuid.New()

	suite.mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE uuid = \$1 (.+)`).
		WithArgs(userUUID.String(), 1).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "uuid", "username", "role"}).
				AddRow(7, userUUID.String(), "giulia", "pub_owner"))

	user, err := suite.repository.GetUserByUUID(context.Background(), userUUID)

	suite.Require().NoError(err)
	suite.Equal(uint(7), user.ID)
	suite.Equal(userUUID, user.UUID)
	suite.Equal(model.RolePubOwner, user.Role)
}

func (suite *UserTestSuite) TestGetUserByUUID_MissingReturnsNotFound() {
	userUUID := uuid.New()

	suite.mock.ExpectQuery(`SELECT (.+) FROM "users" (.+)`).
		WithArgs(userUUID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserByUUID(context.Background(), userUUID)

	suite.Require().ErrorIs(err, repository.ErrUserNotFound)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestSetUserRole_AdminPromotesUser() {
	admin := model.User{Model: gorm.Model{ID: 1}, Role: model.RoleAdmin}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "users" SET "role"=\$1,"updated_at"=\$2 WHERE id = \$3 (.+)`).
		WithArgs("pub_owner", sqlmock.AnyArg(), 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.SetUserRole(context.Background(), admin, 42, model.RolePubOwner)

	suite.NoError(err)
}

func (suite *UserTestSuite) TestSetUserRole_DeniesNonAdmin() {
	owner := model.User{Model: gorm.Model{ID: 100}, Role: model.RolePubOwner}

	err := suite.repository.SetUserRole(context.Background(), owner, 42, model.RoleAdmin)

	suite.Require().ErrorIs(err, repository.ErrNotAuthorized)
}

func (suite *UserTestSuite) TestSetUserRole_UnknownUserReturnsNotFound() {
	admin := model.User{Model: gorm.Model{ID: 1}, Role: model.RoleAdmin}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WithArgs("customer", sqlmock.AnyArg(), 404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.SetUserRole(context.Background(), admin, 404, model.RoleCustomer)

	suite.Require().ErrorIs(err, repository.ErrUserNotFound)
}

func (suite *UserTestSuite) TestGetPlatformStats_DeniesNonAdmin() {
	customer := model.User{Model: gorm.Model{ID: 7}, Role: model.RoleCustomer}

	stats, err := suite.repository.GetPlatformStats(context.Background(), customer)

	suite.Require().ErrorIs(err, repository.ErrNotAuthorized)
	suite.Nil(stats)
}

func (suite *UserTestSuite) TestGetPlatformStats_ScansCounters() {
	admin := model.User{Model: gorm.Model{ID: 1}, Role: model.RoleAdmin}

	suite.mock.ExpectQuery(`SELECT (.+) as user_count, (.+) as menu_item_count`).
		WillReturnRows(
			sqlmock.NewRows([]string{"user_count", "pub_count", "brewery_count", "beer_count", "offering_count", "tap_count", "bottle_count", "menu_item_count"}).
				AddRow(120, 14, 33, 450, 210, 90, 100, 20))

	stats, err := suite.repository.GetPlatformStats(context.Background(), admin)

	suite.Require().NoError(err)
	suite.Equal(uint64(120), stats.UserCount)
	suite.Equal(uint64(14), stats.PubCount)
	suite.Equal(uint64(20), stats.MenuItemCount)
}
