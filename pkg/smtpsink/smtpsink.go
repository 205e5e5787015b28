// Package smtpsink provides a capturing SMTP server for tests: provider
// code dials it like a real MTA and assertions run against the messages
// it accepted. Failure modes can be scripted per command to exercise
// delivery error handling.
package smtpsink

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Message is one email accepted by the sink.
type Message struct {
	Username string
	From     string
	To       []string
	Data     []byte
}

// Sink is an in-process SMTP server that records everything it accepts.
type Sink struct {
	server   *smtp.Server
	listener net.Listener

	mu         sync.Mutex
	messages   []Message
	dataErr    *smtp.SMTPError
	rejectAuth bool
}

// New creates a sink. Call Start to begin listening.
func New() *Sink {
	sink := &Sink{}

	s := smtp.NewServer(&backend{sink: sink})
	s.Domain = "localhost"
	s.ReadTimeout = 10 * time.Second
	s.WriteTimeout = 10 * time.Second
	s.MaxMessageBytes = 10 * 1024 * 1024 // 10 MB max
	s.MaxRecipients = 50
	s.AllowInsecureAuth = true // test sink, no TLS

	sink.server = s
	return sink
}

// Start listens on an ephemeral localhost port and serves in the background.
func (s *Sink) Start() error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("smtpsink: failed to listen: %w", err)
	}
	s.listener = listener

	go func() {
		_ = s.server.Serve(listener)
	}()

	return nil
}

// Addr returns the host:port the sink listens on.
func (s *Sink) Addr() string {
	return s.listener.Addr().String()
}

// Host returns the listen host, for building provider configs.
func (s *Sink) Host() string {
	host, _, _ := net.SplitHostPort(s.Addr())
	return host
}

// Port returns the listen port, for building provider configs.
func (s *Sink) Port() int {
	_, portStr, _ := net.SplitHostPort(s.Addr())
	port, _ := strconv.Atoi(portStr)
	return port
}

// Close stops the server and its listener.
func (s *Sink) Close() error {
	err := s.server.Close()
	if err != nil && strings.Contains(err.Error(), "use of closed network connection") {
		return nil
	}
	return err
}

// Messages returns a copy of everything accepted so far.
func (s *Sink) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset clears captured messages and scripted failures.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.dataErr = nil
	s.rejectAuth = false
}

// RejectData makes every subsequent DATA command fail with the given SMTP
// code until Reset is called. Messages rejected this way are not recorded.
func (s *Sink) RejectData(code int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataErr = &smtp.SMTPError{
		Code:         code,
		EnhancedCode: smtp.EnhancedCode{code / 100, 0, 0},
		Message:      message,
	}
}

// RejectAuth makes every subsequent AUTH attempt fail until Reset is called.
func (s *Sink) RejectAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectAuth = true
}

func (s *Sink) record(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *Sink) dataRejection() *smtp.SMTPError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataErr
}

func (s *Sink) authRejected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejectAuth
}

// backend implements smtp.Backend for the sink
type backend struct {
	sink *Sink
}

// NewSession creates a new SMTP session
func (b *backend) NewSession(c *smtp.Conn) (smtp.Session, error) {
	return &session{sink: b.sink}, nil
}

// session represents an SMTP session for a single connection
type session struct {
	sink     *Sink
	username string
	from     string
	to       []string
}

// AuthMechanisms advertises PLAIN authentication
func (s *session) AuthMechanisms() []string {
	return []string{sasl.Plain}
}

// Auth accepts any PLAIN credentials unless auth rejection is scripted
func (s *session) Auth(mech string) (sasl.Server, error) {
	return sasl.NewPlainServer(func(identity, username, password string) error {
		if s.sink.authRejected() {
			return errors.New("invalid credentials")
		}
		s.username = username
		return nil
	}), nil
}

// Mail is called when the client sends a MAIL FROM command
func (s *session) Mail(from string, opts *smtp.MailOptions) error {
	s.from = from
	return nil
}

// Rcpt is called when the client sends a RCPT TO command
func (s *session) Rcpt(to string, opts *smtp.RcptOptions) error {
	s.to = append(s.to, to)
	return nil
}

// Data records the message unless a data failure is scripted
func (s *session) Data(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if rejection := s.sink.dataRejection(); rejection != nil {
		return rejection
	}

	s.sink.record(Message{
		Username: s.username,
		From:     s.from,
		To:       s.to,
		Data:     data,
	})

	return nil
}

// Reset is called when the client sends a RSET command
func (s *session) Reset() {
	s.from = ""
	s.to = nil
}

// Logout is called when the client disconnects
func (s *session) Logout() error {
	return nil
}
