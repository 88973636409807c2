package dao

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var notificationColumns = []string{
	"id", "recipient", "type", "title", "message", "click_url", "click_external",
	"related_id", "related_model", "channels", "is_read", "read_at", "expires_at", "ctime", "utime",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestNotificationDAOSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(NotificationDAOTestSuite))
}

type NotificationDAOTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	dao  NotificationDAO
}

func (s *NotificationDAOTestSuite) SetupTest() {
	db, mock := newMockDB(s.T())
	s.mock = mock
	s.dao = NewNotificationDAO(db)
}

func (s *NotificationDAOTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *NotificationDAOTestSuite) TestCreate() {
	t := s.T()
	s.mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	n := Notification{
		ID:        1,
		Recipient: sql.NullString{String: "u1", Valid: true},
		Type:      "order_placed",
		Title:     "Order Placed",
		Message:   "Your order ORD-1001 is confirmed",
		Channels:  `["in_app","email"]`,
	}
	created, err := s.dao.Create(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, n.ID, created.ID)
	assert.NotZero(t, created.Ctime)
	assert.Equal(t, created.Ctime, created.Utime)
	assert.False(t, created.IsRead)
}

func (s *NotificationDAOTestSuite) TestCreate_Duplicate() {
	s.mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := s.dao.Create(context.Background(), Notification{ID: 1, Type: "welcome"})
	s.ErrorIs(err, errs.ErrNotificationDuplicate)
}

func (s *NotificationDAOTestSuite) TestGetByID() {
	t := s.T()
	now := time.Now().UnixMilli()
	rows := sqlmock.NewRows(notificationColumns).
		AddRow(int64(7), "u1", "order_placed", "Order Placed", "msg", "/orders/1", false,
			"o1", "Order", `["in_app"]`, false, int64(0), int64(0), now, now)
	s.mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\?").WillReturnRows(rows)

	n, err := s.dao.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), n.ID)
	assert.Equal(t, sql.NullString{String: "u1", Valid: true}, n.Recipient)
	assert.Equal(t, "/orders/1", n.ClickURL)
	assert.Equal(t, "Order", n.RelatedModel)
	assert.Equal(t, now, n.Ctime)
}

func (s *NotificationDAOTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(notificationColumns))

	_, err := s.dao.GetByID(context.Background(), 404)
	s.ErrorIs(err, errs.ErrNotificationNotFound)
}

func (s *NotificationDAOTestSuite) TestMarkAsRead() {
	t := s.T()
	s.mock.ExpectExec("UPDATE `notifications` SET .* WHERE id = \\? AND is_read = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec("UPDATE `notifications` SET .* WHERE id = \\? AND is_read = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := s.dao.MarkAsRead(context.Background(), 1, time.Now().UnixMilli())
	require.NoError(t, err)
	assert.True(t, changed)

	// 已读的记录不再更新
	changed, err = s.dao.MarkAsRead(context.Background(), 1, time.Now().UnixMilli())
	require.NoError(t, err)
	assert.False(t, changed)
}

func (s *NotificationDAOTestSuite) TestListByRecipient_UnreadOnly() {
	t := s.T()
	rows := sqlmock.NewRows(notificationColumns).
		AddRow(int64(2), "u1", "wallet_credited", "t2", "m2", "", false, "", "", `["in_app"]`, false, int64(0), int64(0), int64(200), int64(200)).
		AddRow(int64(1), "u1", "order_placed", "t1", "m1", "", false, "", "", `["in_app"]`, false, int64(0), int64(0), int64(100), int64(100))
	s.mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE recipient = \\? AND is_read = \\? .* ORDER BY ctime DESC").
		WillReturnRows(rows)

	res, err := s.dao.ListByRecipient(context.Background(), "u1", true, 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, uint64(2), res[0].ID)
	assert.Equal(t, uint64(1), res[1].ID)
}

func (s *NotificationDAOTestSuite) TestCountUnread() {
	s.mock.ExpectQuery("SELECT count\\(\\*\\) FROM `notifications` WHERE recipient = \\? AND is_read = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	cnt, err := s.dao.CountUnread(context.Background(), "u1")
	s.NoError(err)
	s.Equal(int64(3), cnt)
}

func (s *NotificationDAOTestSuite) TestListByType() {
	t := s.T()
	rows := sqlmock.NewRows(notificationColumns).
		AddRow(int64(5), nil, "broadcast", "t", "m", "", false, "", "", `["in_app"]`, false, int64(0), int64(0), int64(100), int64(100))
	s.mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE type = \\? .* ORDER BY ctime DESC").
		WillReturnRows(rows)

	res, err := s.dao.ListByType(context.Background(), "broadcast", 0, 20)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.False(t, res[0].Recipient.Valid)
}

func (s *NotificationDAOTestSuite) TestDeleteExpired() {
	s.mock.ExpectExec("DELETE FROM `notifications` WHERE expires_at > 0 AND expires_at <= \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))

	cnt, err := s.dao.DeleteExpired(context.Background(), time.Now().UnixMilli(), 100)
	s.NoError(err)
	s.Equal(int64(3), cnt)
}
