package ioc

import (
	"os"
	"testing"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func loadConfig(t *testing.T) {
	t.Helper()
	f, err := os.Open("../../config/config.yaml")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, econf.LoadFromReader(f, yaml.Unmarshal))
}

// 修改环境变量，不能并行
func TestLoadSMTPConfig(t *testing.T) {
	loadConfig(t)

	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
		assert  func(t *testing.T, host string, port int, user string, timeout time.Duration)
	}{
		{
			name: "只有配置文件",
			assert: func(t *testing.T, host string, port int, user string, timeout time.Duration) {
				assert.Equal(t, "smtp.gmail.com", host)
				assert.Equal(t, 587, port)
				assert.Empty(t, user)
				assert.Equal(t, 10*time.Second, timeout)
			},
		},
		{
			name: "环境变量覆盖",
			env: map[string]string{
				"SMTP_HOST":    "smtp.example.com",
				"SMTP_PORT":    "465",
				"SMTP_USER":    "no-reply@example.com",
				"SMTP_TIMEOUT": "3s",
			},
			assert: func(t *testing.T, host string, port int, user string, timeout time.Duration) {
				assert.Equal(t, "smtp.example.com", host)
				assert.Equal(t, 465, port)
				assert.Equal(t, "no-reply@example.com", user)
				assert.Equal(t, 3*time.Second, timeout)
			},
		},
		{
			name:    "端口不是数字",
			env:     map[string]string{"SMTP_PORT": "abc"},
			wantErr: true,
		},
		{
			name:    "超时格式错误",
			env:     map[string]string{"SMTP_TIMEOUT": "ten seconds"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := loadSMTPConfig()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.assert(t, cfg.Host, cfg.Port, cfg.Username, cfg.Timeout)
		})
	}
}

func TestInitIDGenerator(t *testing.T) {
	loadConfig(t)
	sf := InitIDGenerator()
	id1, err := sf.NextID()
	require.NoError(t, err)
	id2, err := sf.NextID()
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestInitMQ(t *testing.T) {
	q := InitMQ()
	p := InitInAppProducer(q)
	assert.NotNil(t, p)
}
