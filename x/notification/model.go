package notification

type processRequest struct {
	Notification string `json:"notification"`
	Chat         string `json:"chat"`
	OtherChat    string `json:"otherChat"`
	OtherPerson  string `json:"otherPerson"`
}
