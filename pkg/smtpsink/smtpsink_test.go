package smtpsink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func startSink(t *testing.T) *Sink {
	t.Helper()
	sink := New()
	require.NoError(t, sink.Start())
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func newClient(t *testing.T, sink *Sink, opts ...mail.Option) *mail.Client {
	t.Helper()
	opts = append([]mail.Option{
		mail.WithPort(sink.Port()),
		mail.WithTLSPolicy(mail.NoTLS),
	}, opts...)
	client, err := mail.NewClient(sink.Host(), opts...)
	require.NoError(t, err)
	return client
}

func testMessage(t *testing.T) *mail.Msg {
	t.Helper()
	msg := mail.NewMsg()
	require.NoError(t, msg.From("sender@example.com"))
	require.NoError(t, msg.To("rcpt@example.com"))
	msg.Subject("Hello from the sink test")
	msg.SetBodyString(mail.TypeTextPlain, "body text")
	return msg
}

func TestSinkCapturesMessages(t *testing.T) {
	sink := startSink(t)

	client := newClient(t, sink)
	require.NoError(t, client.DialAndSend(testMessage(t)))

	messages := sink.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "sender@example.com", messages[0].From)
	assert.Equal(t, []string{"rcpt@example.com"}, messages[0].To)
	assert.Contains(t, string(messages[0].Data), "Subject: Hello from the sink test")
	assert.Contains(t, string(messages[0].Data), "body text")
}

func TestSinkRecordsAuthUsername(t *testing.T) {
	sink := startSink(t)

	client := newClient(t, sink,
		mail.WithUsername("sender@example.com"),
		mail.WithPassword("secret"),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
	)
	require.NoError(t, client.DialAndSend(testMessage(t)))

	messages := sink.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "sender@example.com", messages[0].Username)
}

func TestSinkRejectData(t *testing.T) {
	sink := startSink(t)
	sink.RejectData(550, "mailbox unavailable")

	client := newClient(t, sink)
	err := client.DialAndSend(testMessage(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "550")
	assert.Contains(t, err.Error(), "mailbox unavailable")

	assert.Empty(t, sink.Messages())
}

func TestSinkRejectAuth(t *testing.T) {
	sink := startSink(t)
	sink.RejectAuth()

	client := newClient(t, sink,
		mail.WithUsername("sender@example.com"),
		mail.WithPassword("wrong"),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
	)
	err := client.DialAndSend(testMessage(t))
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "auth")
}

func TestSinkReset(t *testing.T) {
	sink := startSink(t)
	sink.RejectData(451, "try again later")
	sink.Reset()

	client := newClient(t, sink)
	require.NoError(t, client.DialAndSend(testMessage(t)))
	assert.Len(t, sink.Messages(), 1)
}
