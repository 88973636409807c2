package email

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smtpServer 只实现发信需要的几个命令
type smtpServer struct {
	ln    net.Listener
	conns atomic.Int32
	mails atomic.Int32
}

func newSMTPServer(t *testing.T) *smtpServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &smtpServer{ln: ln}
	t.Cleanup(func() {
		_ = ln.Close()
	})
	go srv.serve()
	return srv
}

func (s *smtpServer) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *smtpServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.conns.Add(1)
		go s.handle(conn)
	}
}

func (s *smtpServer) handle(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	reply := func(lines ...string) {
		for _, l := range lines {
			_, _ = conn.Write([]byte(l + "\r\n"))
		}
	}
	reply("220 localhost ESMTP")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			reply("250-localhost", "250 AUTH PLAIN")
		case strings.HasPrefix(cmd, "AUTH"):
			reply("235 2.7.0 Authentication successful")
		case strings.HasPrefix(cmd, "DATA"):
			reply("354 End data with <CR><LF>.<CR><LF>")
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
			}
			s.mails.Add(1)
			reply("250 OK")
		case strings.HasPrefix(cmd, "QUIT"):
			reply("221 Bye")
			return
		default:
			// HELO MAIL RCPT RSET NOOP
			reply("250 OK")
		}
	}
}

func TestSMTPSender_SendAfterIdleLongerThanTimeout(t *testing.T) {
	t.Parallel()
	srv := newSMTPServer(t)
	s, err := NewSMTPSender(Config{
		Host:     "127.0.0.1",
		Port:     srv.port(),
		Username: "noreply@bazaarfly.com",
		Password: "pwd",
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	defer s.Close()

	email := domain.Email{To: "a@b.com", Subject: "hi", HTML: "<p>hello</p>"}
	require.NoError(t, s.Send(context.Background(), email))
	require.NoError(t, s.Send(context.Background(), email))
	assert.Equal(t, int32(1), srv.conns.Load())

	// 超过 Timeout 之后连接的 deadline 已经过期
	time.Sleep(1500 * time.Millisecond)
	require.NoError(t, s.Send(context.Background(), email))
	assert.Equal(t, int32(3), srv.mails.Load())
	assert.Equal(t, int32(2), srv.conns.Load())
}
