package metrics

import (
	"context"
	"testing"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	emailmocks "gitee.com/flycash/bazaarfly-notification/internal/service/email/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSender_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := emailmocks.NewMockSender(ctrl)
	mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.ErrSendEmailFailed)

	s := NewSender(mockSender)
	// 重复创建不会因为重复注册而 panic
	again := NewSender(mockSender)
	assert.Same(t, s.sendCounter, again.sendCounter)

	success := testutil.ToFloat64(s.sendCounter.WithLabelValues(statusSuccess))
	failed := testutil.ToFloat64(s.sendCounter.WithLabelValues(statusFailed))

	assert.NoError(t, s.Send(context.Background(), domain.Email{To: "a@b.com"}))
	assert.ErrorIs(t, s.Send(context.Background(), domain.Email{To: "a@b.com"}), errs.ErrSendEmailFailed)

	assert.Equal(t, success+1, testutil.ToFloat64(s.sendCounter.WithLabelValues(statusSuccess)))
	assert.Equal(t, failed+1, testutil.ToFloat64(s.sendCounter.WithLabelValues(statusFailed)))
}
