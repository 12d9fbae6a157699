package line

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestValidateSignature(t *testing.T) {
	body := []byte(`{"events":[]}`)
	signature := base64.StdEncoding.EncodeToString(Sign(body, "secret"))

	assert.True(t, ValidateSignature(body, "secret", signature))
	assert.False(t, ValidateSignature(body, "other", signature))
	assert.False(t, ValidateSignature([]byte(`{"events":[{}]}`), "secret", signature))
	assert.False(t, ValidateSignature(body, "secret", "not base64!"))
}

func TestClient_ReplyMessage(t *testing.T) {
	var got ReplyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/message/reply", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})
	err := client.ReplyMessage(context.Background(), "token-1", ReplyRequest{
		ReplyToken: "reply-1",
		Messages:   []Message{ButtonsMessage("予約はこちらから", "ご予約", "text", "予約する", "https://liff.line.me/x")},
	})

	require.NoError(t, err)
	assert.Equal(t, "reply-1", got.ReplyToken)
	require.Len(t, got.Messages, 1)
	require.NotNil(t, got.Messages[0].Template)
	assert.Equal(t, "buttons", got.Messages[0].Template.Type)
	assert.Equal(t, "https://liff.line.me/x", got.Messages[0].Template.Actions[0].URI)
}

func TestClient_ReplyMessage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Authentication failed"}`, wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"Invalid reply token"}`, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, nopLogger{})
			err := client.ReplyMessage(context.Background(), "token", ReplyRequest{ReplyToken: "r", Messages: []Message{TextMessage("hi")}})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_ReplyMessage_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, nopLogger{})

	err := client.ReplyMessage(context.Background(), "token", ReplyRequest{ReplyToken: "r"})

	assert.ErrorIs(t, err, ErrInternal)
}
