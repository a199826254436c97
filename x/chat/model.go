package chat

type establishRequest struct {
	OtherPerson string `json:"otherPerson"`
	OtherChat   string `json:"otherChat,omitempty"`
}
