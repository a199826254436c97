package core

const (
	// TypeLongChat denotes a persistent multi-message chat resource.
	TypeLongChat = "LongChat"
	// TypeAdd denotes an inbox activity announcing an added message or chat.
	TypeAdd = "Add"

	ActivityContext = "https://www.w3.org/ns/activitystreams"
)

const (
	ModeRead    = "Read"
	ModeWrite   = "Write"
	ModeControl = "Control"
)

const (
	ChatDocumentName = "index.ttl"
	ChatFragment     = "#this"
	DayDocumentName  = "chat.ttl"

	DefaultChatTitle = "Hospex chat channel"
)
