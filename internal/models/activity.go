package models

// Activity is the transport-independent shape of one inbound event. The
// Telegram layer converts updates into activities before the turn
// controller sees them.
type Activity struct {
	ConversationID string
	UserID         int64
	Text           string
	Attachments    []Attachment
	MembersAdded   []string
}

// Attachment carries the bytes of an inbound media item, already fetched by
// the transport layer.
type Attachment struct {
	Name string
	Data []byte
}

// Reply is one outgoing message. ImageURL, when set, is sent as a photo
// with Text as its caption.
type Reply struct {
	Text     string
	ImageURL string
}
