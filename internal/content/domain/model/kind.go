package model

import (
	apperrors "yogic-backend/internal/shared/errors"
)

// Kind identifies one of the four content collections. Requests carry it as
// a string tag; ParseKind validates it against the closed set at the
// boundary so an unknown tag is rejected instead of silently ignored.
type Kind string

const (
	KindSchedule Kind = "schedule"
	KindFact     Kind = "fact"
	KindBlog     Kind = "blog"
	KindAsana    Kind = "asana"
)

// collections maps each kind to its MongoDB collection name.
var collections = map[Kind]string{
	KindSchedule: "schedules",
	KindFact:     "facts",
	KindBlog:     "blogs",
	KindAsana:    "asanas",
}

// ParseKind validates a kind tag against the closed set.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := collections[k]; !ok {
		return "", apperrors.ErrUnknownContentKind
	}
	return k, nil
}

// Collection returns the MongoDB collection name for the kind.
func (k Kind) Collection() string {
	return collections[k]
}

// String returns the wire tag for the kind.
func (k Kind) String() string {
	return string(k)
}
