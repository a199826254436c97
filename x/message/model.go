package message

type sendRequest struct {
	Chat    string `json:"chat"`
	Content string `json:"content"`
	// Inbox of the counterpart; when set, an Add notification is emitted
	// after the message is appended.
	Inbox string `json:"inbox,omitempty"`
}
