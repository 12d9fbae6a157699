package line_webhook

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/m04kA/SMC-ReservationShowcase/internal/catalog"
	"github.com/m04kA/SMC-ReservationShowcase/internal/config"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockClient struct {
	mock.Mock
	mu      sync.Mutex
	replies map[string][]line.Message
}

func (m *mockClient) ReplyMessage(ctx context.Context, token string, reply line.ReplyRequest) error {
	m.mu.Lock()
	if m.replies == nil {
		m.replies = make(map[string][]line.Message)
	}
	m.replies[reply.ReplyToken] = reply.Messages
	m.mu.Unlock()
	return m.Called(ctx, token, reply.ReplyToken).Error(0)
}

type countingMetrics struct {
	mu     sync.Mutex
	events map[string]int
}

func (c *countingMetrics) IncWebhookEvent(business, eventType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.events == nil {
		c.events = make(map[string]int)
	}
	c.events[business+"/"+eventType]++
}

const (
	testSecret = "channel-secret"
	testToken  = "channel-token"
)

func channels(liffID string) config.LineConfig {
	return config.LineConfig{Channels: map[string]config.LineChannel{
		"salon": {ChannelSecret: testSecret, ChannelAccessToken: testToken, LiffID: liffID},
	}}
}

func newUseCase(t *testing.T, client *mockClient, metrics *countingMetrics, liffID string) *UseCase {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	return NewUseCase(c, client, channels(liffID), "https://demo.example.com/", metrics, logger.NewNop())
}

func signed(body string) *Request {
	return &Request{
		BusinessType: domain.BusinessSalon,
		Body:         []byte(body),
		Signature:    base64.StdEncoding.EncodeToString(line.Sign([]byte(body), testSecret)),
	}
}

const eventsBody = `{"destination":"U1","events":[
	{"type":"follow","replyToken":"t-follow"},
	{"type":"message","replyToken":"t-reserve","message":{"id":"1","type":"text","text":"予約したい"}},
	{"type":"message","replyToken":"t-hours","message":{"id":"2","type":"text","text":"営業時間は？"}},
	{"type":"message","replyToken":"t-access","message":{"id":"3","type":"text","text":"アクセス"}},
	{"type":"message","replyToken":"t-help","message":{"id":"4","type":"text","text":"HELLO"}},
	{"type":"message","replyToken":"t-sticker","message":{"id":"5","type":"sticker"}},
	{"type":"postback","replyToken":"t-check","postback":{"data":"action=check"}},
	{"type":"unfollow"}
]}`

func TestExecute_RepliesToEvents(t *testing.T) {
	client := &mockClient{}
	client.On("ReplyMessage", mock.Anything, testToken, mock.Anything).Return(nil)
	metrics := &countingMetrics{}

	resp, err := newUseCase(t, client, metrics, "").Execute(context.Background(), signed(eventsBody))

	require.NoError(t, err)
	assert.Equal(t, &Response{Events: 8, Replied: 6}, resp)
	assert.Equal(t, 5, metrics.events["salon/message"])
	assert.Equal(t, 1, metrics.events["salon/unfollow"])

	assert.Equal(t, "ビューティーサロン HANAの公式アカウントです✂️\nお友だち追加ありがとうございます！\n\n下のメニューから予約できます。",
		client.replies["t-follow"][0].Text)

	reserve := client.replies["t-reserve"][0]
	require.NotNil(t, reserve.Template)
	assert.Equal(t, "予約はこちらから", reserve.AltText)
	assert.Equal(t, "https://demo.example.com/demo/salon", reserve.Template.Actions[0].URI)

	assert.Equal(t, "【営業時間】\n10:00〜20:00\n\n【定休日】\n毎週火曜日", client.replies["t-hours"][0].Text)
	assert.Equal(t, "【住所】\n東京都渋谷区〇〇1-2-3\n\n【電話番号】\n03-1234-5678", client.replies["t-access"][0].Text)
	assert.Equal(t, helpText, client.replies["t-help"][0].Text)
	assert.NotContains(t, client.replies, "t-sticker")
	assert.Contains(t, client.replies["t-check"][0].Text, "準備中")
}

func TestExecute_LiffURL(t *testing.T) {
	client := &mockClient{}
	client.On("ReplyMessage", mock.Anything, testToken, "t1").Return(nil)

	body := `{"events":[{"type":"postback","replyToken":"t1","postback":{"data":"action=reserve"}}]}`
	_, err := newUseCase(t, client, &countingMetrics{}, "1234-abcd").Execute(context.Background(), signed(body))

	require.NoError(t, err)
	msg := client.replies["t1"][0]
	assert.Equal(t, "予約ページを開く", msg.Template.Actions[0].Label)
	assert.Equal(t, "https://liff.line.me/1234-abcd", msg.Template.Actions[0].URI)
}

func TestExecute_Errors(t *testing.T) {
	body := `{"events":[]}`

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "unknown business",
			req:     &Request{BusinessType: "spa", Body: []byte(body), Signature: "x"},
			wantErr: ErrBusinessNotFound,
		},
		{
			name:    "not configured",
			req:     &Request{BusinessType: domain.BusinessClinic, Body: []byte(body), Signature: "x"},
			wantErr: ErrNotConfigured,
		},
		{
			name:    "missing signature",
			req:     &Request{BusinessType: domain.BusinessSalon, Body: []byte(body)},
			wantErr: ErrMissingSignature,
		},
		{
			name:    "invalid signature",
			req:     &Request{BusinessType: domain.BusinessSalon, Body: []byte(body), Signature: "bm9wZQ=="},
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "bad json",
			req:     signed(`{"events":`),
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "no events array",
			req:     signed(`{"destination":"U1"}`),
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "null events",
			req:     signed(`{"events":null}`),
			wantErr: ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			resp, err := newUseCase(t, client, &countingMetrics{}, "").Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			client.AssertNotCalled(t, "ReplyMessage", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ReplyFailure(t *testing.T) {
	client := &mockClient{}
	client.On("ReplyMessage", mock.Anything, testToken, "t-follow").Return(line.ErrUnauthorized)
	client.On("ReplyMessage", mock.Anything, testToken, mock.Anything).Return(nil)

	_, err := newUseCase(t, client, &countingMetrics{}, "").Execute(context.Background(), signed(eventsBody))

	assert.ErrorIs(t, err, ErrReplyFailed)
}

// slowClient отвечает с ошибкой на токен "bad", остальные ответы ждут и фиксируют состояние контекста
type slowClient struct {
	mu        sync.Mutex
	completed []string
	cancelled []string
}

func (c *slowClient) ReplyMessage(ctx context.Context, _ string, reply line.ReplyRequest) error {
	if reply.ReplyToken == "bad" {
		return line.ErrUnauthorized
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		c.cancelled = append(c.cancelled, reply.ReplyToken)
		c.mu.Unlock()
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
	}

	c.mu.Lock()
	c.completed = append(c.completed, reply.ReplyToken)
	c.mu.Unlock()
	return nil
}

func TestExecute_ReplyFailureDoesNotCancelOtherReplies(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	client := &slowClient{}
	uc := NewUseCase(c, client, channels(""), "https://demo.example.com", &countingMetrics{}, logger.NewNop())

	body := `{"events":[
		{"type":"follow","replyToken":"good1"},
		{"type":"follow","replyToken":"bad"},
		{"type":"follow","replyToken":"good2"}
	]}`
	_, err = uc.Execute(context.Background(), signed(body))

	assert.ErrorIs(t, err, ErrReplyFailed)
	assert.Empty(t, client.cancelled)
	assert.ElementsMatch(t, []string{"good1", "good2"}, client.completed)
}

func TestRichMenu(t *testing.T) {
	uc := newUseCase(t, &mockClient{}, &countingMetrics{}, "")

	menu, err := uc.RichMenu(domain.BusinessClinic)
	require.NoError(t, err)
	assert.Equal(t, line.RichMenuSize{Width: 2500, Height: 1686}, menu.Size)
	assert.Equal(t, "やまだ内科クリニック Menu", menu.Name)
	assert.Equal(t, "メニュー", menu.ChatBarText)
	require.Len(t, menu.Areas, 4)
	assert.Equal(t, line.RichMenuBounds{X: 1250, Y: 843, Width: 1250, Height: 843}, menu.Areas[3].Bounds)
	assert.Equal(t, "tel:03-9876-5432", menu.Areas[3].Action.URI)
	assert.Equal(t, "action=info", menu.Areas[2].Action.Data)

	_, err = uc.RichMenu("spa")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}
