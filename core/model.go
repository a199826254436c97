package core

import (
	"time"
)

// Chat is a persistent chat resource living on one pod.
// The subject is <document>#this.
type Chat struct {
	ID            string          `json:"id,omitempty"`
	Type          string          `json:"type"`
	Author        string          `json:"author"`
	Created       time.Time       `json:"created"`
	Title         string          `json:"title"`
	Participation []Participation `json:"participation,omitempty"`
	Messages      []Message       `json:"message,omitempty"`
}

// Participation is one member's entry in a chat.
// References holds at most one back-link to the counterpart's chat.
type Participation struct {
	ID          string    `json:"id,omitempty"`
	Participant string    `json:"participant"`
	DTStart     time.Time `json:"dtstart"`
	References  []string  `json:"references,omitempty"`
}

// Message is appended to a day-bucketed chat log document and never
// mutated afterwards.
type Message struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Content string    `json:"content"`
	Maker   string    `json:"maker"`
}

// Notification is an Add activity posted into a recipient's inbox.
type Notification struct {
	ID      string    `json:"id,omitempty"`
	Type    string    `json:"type"`
	Actor   string    `json:"actor"`
	Context string    `json:"context,omitempty"`
	Object  string    `json:"object"`
	Target  string    `json:"target"`
	Updated time.Time `json:"updated"`
}

// AccessGrant is one authorization entry in an ACL resource.
type AccessGrant struct {
	ID       string   `json:"id,omitempty"`
	Agent    []string `json:"agent"`
	AccessTo []string `json:"accessTo"`
	Default  []string `json:"default,omitempty"`
	Mode     []string `json:"mode"`
}

// TypeRegistration catalogues instances of one RDF class inside a type index.
type TypeRegistration struct {
	ID       string   `json:"id,omitempty"`
	ForClass []string `json:"forClass"`
	Instance []string `json:"instance,omitempty"`
}

// EstablishedChat is the result of provisioning a new chat.
type EstablishedChat struct {
	ChatContainer string `json:"chatContainer"`
	ChatFile      string `json:"chatFile"`
	ChatID        string `json:"chatId"`
}

// SentMessage is the result of appending a message to a chat log.
type SentMessage struct {
	MessageID string    `json:"messageId"`
	TodayChat string    `json:"todayChat"`
	CreatedAt time.Time `json:"createdAt"`
}
