package uuid

import "github.com/gofrs/uuid/v5"

// UUID aliases the gofrs type so models and DTOs share one import path.
type UUID = uuid.UUID

var Nil = uuid.Nil

func NewV4() UUID {
	return uuid.Must(uuid.NewV4())
}

func FromString(s string) (UUID, error) {
	return uuid.FromString(s)
}

func MustFromString(s string) UUID {
	return uuid.Must(uuid.FromString(s))
}
