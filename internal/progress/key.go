// Package progress tracks which lessons have been completed.
package progress

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the item and lesson identifiers in a serialized key.
const Separator = ":"

// ErrInvalidKey indicates a key that cannot be serialized unambiguously.
var ErrInvalidKey = errors.New("invalid progress key")

// Key addresses one progress entry: a lesson within its owning item.
type Key struct {
	ItemID   string
	LessonID string
}

// NewKey builds a key for lessonID owned by itemID.
func NewKey(itemID, lessonID string) Key {
	return Key{ItemID: itemID, LessonID: lessonID}
}

// String serializes the key as "item:lesson".
func (k Key) String() string {
	return k.ItemID + Separator + k.LessonID
}

// Validate checks that the key round-trips through String and ParseKey.
// The item identifier must be non-empty and free of the separator.
func (k Key) Validate() error {
	if k.ItemID == "" || k.LessonID == "" {
		return fmt.Errorf("%w: empty identifier in %q", ErrInvalidKey, k.String())
	}
	if strings.Contains(k.ItemID, Separator) {
		return fmt.Errorf("%w: item id %q contains %q", ErrInvalidKey, k.ItemID, Separator)
	}
	return nil
}

// ParseKey splits a serialized key at the first separator.
func ParseKey(s string) (Key, error) {
	itemID, lessonID, ok := strings.Cut(s, Separator)
	if !ok || itemID == "" || lessonID == "" {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key{ItemID: itemID, LessonID: lessonID}, nil
}
