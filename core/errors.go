package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorNoParticipation struct {
}

func (e ErrorNoParticipation) Error() string {
	return "no participation"
}

func NewErrorNoParticipation() ErrorNoParticipation {
	return ErrorNoParticipation{}
}

type ErrorTooMuchParticipation struct {
}

func (e ErrorTooMuchParticipation) Error() string {
	return "too much participation"
}

func NewErrorTooMuchParticipation() ErrorTooMuchParticipation {
	return ErrorTooMuchParticipation{}
}

type ErrorParticipationNotFound struct {
}

func (e ErrorParticipationNotFound) Error() string {
	return "other person's participation not found"
}

func NewErrorParticipationNotFound() ErrorParticipationNotFound {
	return ErrorParticipationNotFound{}
}

type ErrorAlreadyReferenced struct {
}

func (e ErrorAlreadyReferenced) Error() string {
	return "participation already references some other chat"
}

func NewErrorAlreadyReferenced() ErrorAlreadyReferenced {
	return ErrorAlreadyReferenced{}
}

type ErrorAclNotFound struct {
}

func (e ErrorAclNotFound) Error() string {
	return "acl link not found"
}

func NewErrorAclNotFound() ErrorAclNotFound {
	return ErrorAclNotFound{}
}
