package line

// Типы событий webhook
const (
	EventTypeFollow   = "follow"
	EventTypeMessage  = "message"
	EventTypePostback = "postback"
)

// MessageTypeText тип текстового сообщения
const MessageTypeText = "text"

// WebhookRequest тело запроса webhook от LINE Platform
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event событие webhook
type Event struct {
	Type       string         `json:"type"`
	ReplyToken string         `json:"replyToken,omitempty"`
	Timestamp  int64          `json:"timestamp"`
	Source     *EventSource   `json:"source,omitempty"`
	Message    *EventMessage  `json:"message,omitempty"`
	Postback   *EventPostback `json:"postback,omitempty"`
}

// EventSource источник события
type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId,omitempty"`
}

// EventMessage входящее сообщение пользователя
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// EventPostback данные postback действия
type EventPostback struct {
	Data string `json:"data"`
}

// Message исходящее сообщение (text или template)
type Message struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	AltText  string    `json:"altText,omitempty"`
	Template *Template `json:"template,omitempty"`
}

// Template шаблон сообщения с кнопками
type Template struct {
	Type    string   `json:"type"`
	Title   string   `json:"title,omitempty"`
	Text    string   `json:"text"`
	Actions []Action `json:"actions"`
}

// Action действие кнопки или области rich menu
type Action struct {
	Type        string `json:"type"`
	Label       string `json:"label,omitempty"`
	URI         string `json:"uri,omitempty"`
	Data        string `json:"data,omitempty"`
	DisplayText string `json:"displayText,omitempty"`
}

// ReplyRequest тело запроса на ответ
type ReplyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// RichMenu шаблон rich menu
type RichMenu struct {
	Size        RichMenuSize   `json:"size"`
	Selected    bool           `json:"selected"`
	Name        string         `json:"name"`
	ChatBarText string         `json:"chatBarText"`
	Areas       []RichMenuArea `json:"areas"`
}

// RichMenuSize размер rich menu
type RichMenuSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RichMenuArea область rich menu
type RichMenuArea struct {
	Bounds RichMenuBounds `json:"bounds"`
	Action Action         `json:"action"`
}

// RichMenuBounds границы области
type RichMenuBounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ErrorResponse модель ошибки от LINE Messaging API
type ErrorResponse struct {
	Message string `json:"message"`
}

// TextMessage создает текстовое сообщение
func TextMessage(text string) Message {
	return Message{Type: MessageTypeText, Text: text}
}

// ButtonsMessage создает сообщение-шаблон с одной URI кнопкой
func ButtonsMessage(altText, title, text, label, uri string) Message {
	return Message{
		Type:    "template",
		AltText: altText,
		Template: &Template{
			Type:    "buttons",
			Title:   title,
			Text:    text,
			Actions: []Action{{Type: "uri", Label: label, URI: uri}},
		},
	}
}
