package delivery

import (
	"context"
	"errors"
	"net/smtp"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Zachkp/portfolio/internal/contact"
)

var testMessage = contact.Message{FromName: "Ada", FromEmail: "ada@example.com", Message: "Hello there"}

func TestSMTPRequiresCredentials(t *testing.T) {
	s := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: "587", To: "owner@example.com"})
	assert.ErrorIs(t, s.Send(context.Background(), testMessage), ErrNotConfigured)
}

func TestSMTPComposesMessage(t *testing.T) {
	s := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: "587", User: "site@example.com", Pass: "secret", To: "owner@example.com"})

	var gotAddr string
	var gotTo []string
	var gotBody string
	s.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotBody = addr, to, string(msg)
		assert.Equal(t, "site@example.com", from)
		return nil
	}

	require.NoError(t, s.Send(context.Background(), testMessage))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, gotBody, "Subject: Portfolio Contact: Ada\r\n")
	assert.Contains(t, gotBody, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, gotBody, "Hello there")
}

func TestSMTPWrapsSendError(t *testing.T) {
	s := NewSMTP(SMTPConfig{Host: "h", Port: "25", User: "u", Pass: "p", To: "t"})
	boom := errors.New("connection refused")
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	err := s.Send(context.Background(), testMessage)
	assert.ErrorIs(t, err, boom)
}

func TestInboxStoresListsAndPrunes(t *testing.T) {
	ctx := context.Background()
	in, err := OpenInbox(ctx, filepath.Join(t.TempDir(), "inbox.db"))
	require.NoError(t, err)
	defer in.Close()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		in.now = func() time.Time { return base.AddDate(0, i*6, 0) }
		require.NoError(t, in.Send(ctx, contact.Message{FromName: name, FromEmail: name + "@example.com", Message: "hi"}))
	}

	all, err := in.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].FromName)
	assert.Equal(t, "old", all[2].FromName)
	assert.True(t, all[0].ReceivedAt.Equal(base.AddDate(0, 12, 0)))

	top, err := in.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)

	n, err := in.Prune(ctx, base.AddDate(0, 3, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rest, err := in.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestTracedRecordsOutcome(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ok := NewTraced(contact.SenderFunc(func(context.Context, contact.Message) error { return nil }), "inbox")
	require.NoError(t, ok.Send(context.Background(), testMessage))

	failing := NewTraced(contact.SenderFunc(func(context.Context, contact.Message) error {
		return errors.New("rejected")
	}), "smtp")
	require.Error(t, failing.Send(context.Background(), testMessage))

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "contact.deliver", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.True(t, strings.Contains(spans[1].Status().Description, "rejected"))
}
