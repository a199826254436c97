package core

// Persisted document shapes. The wire encoding of the storage protocol is
// opaque to this module; documents travel as JSON-serialized shapes.

// AccessControlDocument is the ACL resource attached to a container.
type AccessControlDocument struct {
	ID            string        `json:"id,omitempty"`
	Authorization []AccessGrant `json:"authorization,omitempty"`
}

// TypeIndexDocument is a pod-resident catalogue of instances per RDF class.
type TypeIndexDocument struct {
	ID         string             `json:"id,omitempty"`
	References []TypeRegistration `json:"references,omitempty"`
}

// ContainerDocument is the listing shape of a container resource.
type ContainerDocument struct {
	ID       string   `json:"id,omitempty"`
	Contains []string `json:"contains,omitempty"`
}
