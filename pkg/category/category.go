// Package category defines the tag model events reference by key.
package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category groups events by area (work, family, health, ...). Events
// hold only the ID; a category can be deleted while events still carry
// its key, and every consumer must render the raw key in that case
// rather than fail.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"` // hex accent, e.g. "#268bd2"
}

func New(name string) *Category {
	return &Category{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// ValidateName checks a category name before it is stored.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("category: name required")
	}
	return nil
}

// ValidateColor accepts an empty color or a parseable hex value.
func ValidateColor(hex string) error {
	if hex == "" {
		return nil
	}
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("category: bad color %q: %w", hex, err)
	}
	return nil
}

// Find returns the category with the given id, if present.
func Find(list []*Category, id string) (*Category, bool) {
	for _, c := range list {
		if c != nil && c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// MarshalList renders categories as a JSON array, for exports.
func MarshalList(list []*Category) ([]byte, error) {
	return json.Marshal(list)
}

func UnmarshalList(data []byte) ([]*Category, error) {
	var list []*Category
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// DisplayName resolves an event's category key against the list. A
// dangling key renders as the raw id.
func DisplayName(list []*Category, id string) string {
	if id == "" {
		return ""
	}
	if c, ok := Find(list, id); ok {
		return c.Name
	}
	return id
}
