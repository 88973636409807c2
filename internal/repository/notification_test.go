package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/dao"
	daomocks "gitee.com/flycash/bazaarfly-notification/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_Create(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expires := time.UnixMilli(time.Now().Add(time.Hour).UnixMilli())
	n := domain.Notification{
		ID:            10,
		Recipient:     "u1",
		Type:          domain.TypeOrderPlaced,
		Title:         "Order Placed",
		Message:       "Your order ORD-1001 is confirmed",
		ClickAction:   &domain.ClickAction{URL: "/orders/ORD-1001"},
		RelatedEntity: &domain.RelatedEntity{ID: "ORD-1001", Model: domain.EntityOrder},
		Channels:      []domain.Channel{domain.ChannelInApp, domain.ChannelEmail},
		ExpiresAt:     expires,
	}

	mockDAO := daomocks.NewMockNotificationDAO(ctrl)
	mockDAO.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data dao.Notification) (dao.Notification, error) {
			assert.Equal(t, sql.NullString{String: "u1", Valid: true}, data.Recipient)
			assert.Equal(t, "order_placed", data.Type)
			assert.Equal(t, `["in_app","email"]`, data.Channels)
			assert.Equal(t, "/orders/ORD-1001", data.ClickURL)
			assert.Equal(t, "Order", data.RelatedModel)
			assert.Equal(t, expires.UnixMilli(), data.ExpiresAt)
			assert.Zero(t, data.ReadAt)
			data.Ctime, data.Utime = 1000, 1000
			return data, nil
		})

	repo := NewNotificationRepository(mockDAO)
	created, err := repo.Create(context.Background(), n)
	require.NoError(t, err)

	assert.Equal(t, n.ID, created.ID)
	assert.Equal(t, n.Channels, created.Channels)
	assert.Equal(t, n.ClickAction, created.ClickAction)
	assert.Equal(t, n.RelatedEntity, created.RelatedEntity)
	assert.True(t, created.ExpiresAt.Equal(expires))
	assert.True(t, created.ReadAt.IsZero())
	assert.Equal(t, time.UnixMilli(1000), created.Ctime)
}

func TestNotificationRepository_BroadcastRoundTrip(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDAO := daomocks.NewMockNotificationDAO(ctrl)
	mockDAO.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data dao.Notification) (dao.Notification, error) {
			assert.False(t, data.Recipient.Valid)
			return data, nil
		})

	created, err := NewNotificationRepository(mockDAO).Create(context.Background(), domain.Notification{
		ID:       11,
		Type:     domain.TypeBroadcast,
		Title:    "Hello",
		Message:  "Everyone",
		Channels: []domain.Channel{domain.ChannelInApp},
	})
	require.NoError(t, err)
	assert.True(t, created.IsBroadcast())
	assert.Nil(t, created.ClickAction)
	assert.Nil(t, created.RelatedEntity)
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(5000)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) dao.NotificationDAO
		wantErr  error
		wantRead time.Time
	}{
		{
			name: "第一次标记已读",
			mock: func(ctrl *gomock.Controller) dao.NotificationDAO {
				d := daomocks.NewMockNotificationDAO(ctrl)
				d.EXPECT().MarkAsRead(gomock.Any(), uint64(1), int64(5000)).Return(true, nil)
				d.EXPECT().GetByID(gomock.Any(), uint64(1)).Return(dao.Notification{
					ID: 1, IsRead: true, ReadAt: 5000, Channels: `["in_app"]`,
				}, nil)
				return d
			},
			wantRead: now,
		},
		{
			name: "重复标记保持第一次的时间",
			mock: func(ctrl *gomock.Controller) dao.NotificationDAO {
				d := daomocks.NewMockNotificationDAO(ctrl)
				d.EXPECT().MarkAsRead(gomock.Any(), uint64(1), int64(5000)).Return(false, nil)
				d.EXPECT().GetByID(gomock.Any(), uint64(1)).Return(dao.Notification{
					ID: 1, IsRead: true, ReadAt: 3000, Channels: `["in_app"]`,
				}, nil)
				return d
			},
			wantRead: time.UnixMilli(3000),
		},
		{
			name: "通知不存在",
			mock: func(ctrl *gomock.Controller) dao.NotificationDAO {
				d := daomocks.NewMockNotificationDAO(ctrl)
				d.EXPECT().MarkAsRead(gomock.Any(), uint64(1), int64(5000)).Return(false, nil)
				d.EXPECT().GetByID(gomock.Any(), uint64(1)).Return(dao.Notification{}, errs.ErrNotificationNotFound)
				return d
			},
			wantErr: errs.ErrNotificationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			n, err := NewNotificationRepository(tc.mock(ctrl)).MarkAsRead(context.Background(), 1, now)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.True(t, n.IsRead)
			assert.True(t, n.ReadAt.Equal(tc.wantRead))
		})
	}
}

func TestNotificationRepository_ListByType(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDAO := daomocks.NewMockNotificationDAO(ctrl)
	mockDAO.EXPECT().ListByType(gomock.Any(), "low_stock_admin", 0, 10).Return([]dao.Notification{
		{ID: 2, Type: "low_stock_admin", Channels: `["in_app"]`, Ctime: 200},
		{ID: 1, Type: "low_stock_admin", Channels: `["in_app"]`, Ctime: 100},
	}, nil)

	res, err := NewNotificationRepository(mockDAO).ListByType(context.Background(), domain.TypeLowStockAdmin, 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, uint64(2), res[0].ID)
	assert.Equal(t, domain.TypeLowStockAdmin, res[1].Type)
}
