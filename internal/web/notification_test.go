package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/jwtx"
	limitmocks "gitee.com/flycash/bazaarfly-notification/internal/pkg/ratelimit/mocks"
	notificationmocks "gitee.com/flycash/bazaarfly-notification/internal/service/notification/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "test-key"

type mocks struct {
	svc     *notificationmocks.MockService
	sendSvc *notificationmocks.MockSendService
	limiter *limitmocks.MockLimiter
}

func newServer(t *testing.T, ctrl *gomock.Controller, setup func(m mocks)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := mocks{
		svc:     notificationmocks.NewMockService(ctrl),
		sendSvc: notificationmocks.NewMockSendService(ctrl),
		limiter: limitmocks.NewMockLimiter(ctrl),
	}
	if setup != nil {
		setup(m)
	}
	server := gin.New()
	NewHandler(m.svc, m.sendSvc, m.limiter).PrivateRoutes(server, NewLoginMiddlewareBuilder(jwtx.NewAuth(testKey)).Build())
	return server
}

func token(t *testing.T, uid string, role domain.Role) string {
	t.Helper()
	tk, err := jwtx.NewAuth(testKey).Encode(jwtx.UserClaims(uid, string(role)))
	require.NoError(t, err)
	return "Bearer " + tk
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) Result {
	t.Helper()
	res := Result{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandler_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	server := newServer(t, ctrl, func(m mocks) {
		m.svc.EXPECT().ListByRecipient(gomock.Any(), "u1", true, 0, 10).
			Return([]domain.Notification{
				{ID: 2, Recipient: "u1", Type: domain.TypeWalletCredited, Title: "t2", Message: "m2", Ctime: now},
				{ID: 1, Recipient: "u1", Type: domain.TypeOrderPlaced, Title: "t1", Message: "m1", Ctime: now.Add(-time.Minute)},
			}, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true&limit=10", nil)
	req.Header.Set("Authorization", token(t, "u1", domain.RoleCustomer))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ListResp
	res := decode(t, w, &resp)
	assert.Equal(t, CodeOK, res.Code)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, uint64(2), resp.Notifications[0].ID)
	assert.Equal(t, now.UnixMilli(), resp.Notifications[0].Ctime)
	assert.Zero(t, resp.Notifications[0].ReadAt)
}

func TestHandler_Unauthorized(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		token string
	}{
		{name: "没有令牌"},
		{name: "令牌无效", token: "Bearer abc"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, ctrl, nil)

			req := httptest.NewRequest(http.MethodGet, "/notifications/unread/count", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", tc.token)
			}
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, CodeUnauthorized, decode(t, w, nil).Code)
		})
	}
}

func TestHandler_CountUnread(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(t, ctrl, func(m mocks) {
		m.svc.EXPECT().CountUnread(gomock.Any(), "u1").Return(int64(3), nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread/count", nil)
	req.Header.Set("Authorization", token(t, "u1", domain.RoleCustomer))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CountResp
	decode(t, w, &resp)
	assert.Equal(t, int64(3), resp.Count)
}

func TestHandler_MarkAsRead(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		setup    func(m mocks)
		wantCode int
		wantBiz  int
	}{
		{
			name: "标记成功",
			path: "/notifications/1/read",
			setup: func(m mocks) {
				m.svc.EXPECT().MarkAsRead(gomock.Any(), uint64(1), "u1").
					Return(domain.Notification{ID: 1, Recipient: "u1", IsRead: true, ReadAt: time.Now()}, nil)
			},
			wantCode: http.StatusOK,
			wantBiz:  CodeOK,
		},
		{
			name: "不是自己的通知",
			path: "/notifications/1/read",
			setup: func(m mocks) {
				m.svc.EXPECT().MarkAsRead(gomock.Any(), uint64(1), "u1").
					Return(domain.Notification{}, errs.ErrPermissionDenied)
			},
			wantCode: http.StatusForbidden,
			wantBiz:  CodeForbidden,
		},
		{
			name: "通知不存在",
			path: "/notifications/404/read",
			setup: func(m mocks) {
				m.svc.EXPECT().MarkAsRead(gomock.Any(), uint64(404), "u1").
					Return(domain.Notification{}, errs.ErrNotificationNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBiz:  CodeNotFound,
		},
		{
			name:     "id不合法",
			path:     "/notifications/abc/read",
			wantCode: http.StatusBadRequest,
			wantBiz:  CodeInvalidParam,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, ctrl, tc.setup)

			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			req.Header.Set("Authorization", token(t, "u1", domain.RoleCustomer))
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantBiz, decode(t, w, nil).Code)
		})
	}
}

func TestHandler_Send(t *testing.T) {
	t.Parallel()

	sendReq := SendReq{
		Recipient:       "u1",
		Type:            "order_placed",
		Title:           "Order Placed",
		Message:         "Your order ORD-1001 is confirmed",
		Channels:        []string{"in_app", "email"},
		TemplatePayload: map[string]any{"orderNumber": "ORD-1001"},
	}
	created := domain.Notification{
		ID: 1, Recipient: "u1", Type: domain.TypeOrderPlaced, Title: "Order Placed",
		Channels: []domain.Channel{domain.ChannelInApp, domain.ChannelEmail},
	}

	testCases := []struct {
		name     string
		role     domain.Role
		setup    func(m mocks)
		wantCode int
		wantBiz  int
	}{
		{
			name: "管理员发送",
			role: domain.RoleAdmin,
			setup: func(m mocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), "admin_send:admin1").Return(false, nil)
				m.sendSvc.EXPECT().SendNotification(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.SendRequest) (domain.Notification, error) {
						assert.Equal(t, domain.TypeOrderPlaced, req.Type)
						assert.Equal(t, []domain.Channel{domain.ChannelInApp, domain.ChannelEmail}, req.Channels)
						return created, nil
					})
			},
			wantCode: http.StatusOK,
			wantBiz:  CodeOK,
		},
		{
			name: "部分渠道失败",
			role: domain.RoleAdmin,
			setup: func(m mocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, nil)
				m.sendSvc.EXPECT().SendNotification(gomock.Any(), gomock.Any()).
					Return(created, errs.ErrSendNotificationFailed)
			},
			wantCode: http.StatusOK,
			wantBiz:  CodeChannelFailed,
		},
		{
			name: "参数错误",
			role: domain.RoleAdmin,
			setup: func(m mocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, nil)
				m.sendSvc.EXPECT().SendNotification(gomock.Any(), gomock.Any()).
					Return(domain.Notification{}, errs.ErrInvalidParameter)
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  CodeInvalidParam,
		},
		{
			name: "落库失败",
			role: domain.RoleAdmin,
			setup: func(m mocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, nil)
				m.sendSvc.EXPECT().SendNotification(gomock.Any(), gomock.Any()).
					Return(domain.Notification{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBiz:  CodeInternal,
		},
		{
			name: "发送太频繁",
			role: domain.RoleAdmin,
			setup: func(m mocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), "admin_send:admin1").Return(true, nil)
			},
			wantCode: http.StatusTooManyRequests,
			wantBiz:  CodeTooManyRequests,
		},
		{
			name: "限流器出错时放行",
			role: domain.RoleAdmin,
			setup: func(m mocks) {
				m.limiter.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, errors.New("mock redis error"))
				m.sendSvc.EXPECT().SendNotification(gomock.Any(), gomock.Any()).Return(created, nil)
			},
			wantCode: http.StatusOK,
			wantBiz:  CodeOK,
		},
		{
			name:     "普通用户不能发送",
			role:     domain.RoleCustomer,
			wantCode: http.StatusForbidden,
			wantBiz:  CodeForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, ctrl, tc.setup)

			req := httptest.NewRequest(http.MethodPost, "/admin/notifications", iox.NewJSONReader(sendReq))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", token(t, "admin1", tc.role))
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantBiz, decode(t, w, nil).Code)
		})
	}
}

func TestHandler_ListByType(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(t, ctrl, func(m mocks) {
		m.svc.EXPECT().ListByType(gomock.Any(), domain.TypeBroadcast, 20, 5).
			Return([]domain.Notification{{ID: 9, Type: domain.TypeBroadcast, Channels: []domain.Channel{domain.ChannelInApp}}}, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/notifications?type=broadcast&offset=20&limit=5", nil)
	req.Header.Set("Authorization", token(t, "admin1", domain.RoleAdmin))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ListResp
	decode(t, w, &resp)
	require.Len(t, resp.Notifications, 1)
	assert.Empty(t, resp.Notifications[0].Recipient)
	assert.Equal(t, []string{"in_app"}, resp.Notifications[0].Channels)
}
