package notification

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	repomocks "gitee.com/flycash/bazaarfly-notification/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_MarkAsRead(t *testing.T) {
	t.Parallel()

	readAt := time.UnixMilli(1000)
	testCases := []struct {
		name      string
		recipient string
		mock      func(ctrl *gomock.Controller) repository.NotificationRepository
		wantErr   error
		wantRead  bool
	}{
		{
			name:      "接收者本人标记已读",
			recipient: "u1",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), uint64(1)).
					Return(domain.Notification{ID: 1, Recipient: "u1"}, nil)
				repo.EXPECT().MarkAsRead(gomock.Any(), uint64(1), gomock.Any()).
					Return(domain.Notification{ID: 1, Recipient: "u1", IsRead: true, ReadAt: readAt}, nil)
				return repo
			},
			wantRead: true,
		},
		{
			name:      "已读的不再更新",
			recipient: "u1",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), uint64(1)).
					Return(domain.Notification{ID: 1, Recipient: "u1", IsRead: true, ReadAt: readAt}, nil)
				return repo
			},
			wantRead: true,
		},
		{
			name:      "不是接收者",
			recipient: "u2",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), uint64(1)).
					Return(domain.Notification{ID: 1, Recipient: "u1"}, nil)
				return repo
			},
			wantErr: errs.ErrPermissionDenied,
		},
		{
			name:      "广播通知",
			recipient: "u1",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), uint64(1)).
					Return(domain.Notification{ID: 1}, nil)
				return repo
			},
			wantErr: errs.ErrPermissionDenied,
		},
		{
			name:      "通知不存在",
			recipient: "u1",
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), uint64(1)).
					Return(domain.Notification{}, errs.ErrNotificationNotFound)
				return repo
			},
			wantErr: errs.ErrNotificationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewNotificationService(tc.mock(ctrl))
			n, err := svc.MarkAsRead(context.Background(), 1, tc.recipient)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRead, n.IsRead)
			assert.True(t, readAt.Equal(n.ReadAt))
		})
	}
}

func TestNotificationService_ListByRecipient(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		offset     int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{name: "默认分页", offset: 0, limit: 0, wantOffset: 0, wantLimit: 20},
		{name: "超过上限", offset: 10, limit: 500, wantOffset: 10, wantLimit: 100},
		{name: "负数偏移", offset: -1, limit: 5, wantOffset: 0, wantLimit: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockNotificationRepository(ctrl)
			repo.EXPECT().ListByRecipient(gomock.Any(), "u1", true, tc.wantOffset, tc.wantLimit).
				Return([]domain.Notification{{ID: 2}, {ID: 1}}, nil)

			res, err := NewNotificationService(repo).ListByRecipient(context.Background(), "u1", true, tc.offset, tc.limit)
			require.NoError(t, err)
			assert.Len(t, res, 2)
		})
	}
}

func TestNotificationService_InvalidParameter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewNotificationService(repomocks.NewMockNotificationRepository(ctrl))

	_, err := svc.ListByRecipient(context.Background(), "", false, 0, 10)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = svc.CountUnread(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = svc.ListByType(context.Background(), "unknown", 0, 10)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestNotificationService_CountUnreadAndListByType(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().CountUnread(gomock.Any(), "u1").Return(int64(3), nil)
	repo.EXPECT().ListByType(gomock.Any(), domain.TypeBroadcast, 0, 20).
		Return([]domain.Notification{{ID: 9, Type: domain.TypeBroadcast}}, nil)
	svc := NewNotificationService(repo)

	cnt, err := svc.CountUnread(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)

	res, err := svc.ListByType(context.Background(), domain.TypeBroadcast, 0, 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].IsBroadcast())
}
