package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a single calendar entry. The ID is opaque and stays stable
// across save/load cycles. CategoryID is a key into the category store;
// it is carried by value and never validated here, so a key whose
// category was deleted is tolerated rather than treated as corruption.
type Event struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	CategoryID string    `json:"categoryId,omitempty"`
}

func New(title string, start, end time.Time) *Event {
	return &Event{
		ID:    uuid.NewString(),
		Title: title,
		Start: start,
		End:   end,
	}
}

// Row returns the agenda table columns for this event.
func (e *Event) Row() (string, string, string) {
	return e.Window(), e.Title, e.CategoryID
}

// Window renders the start/end of the event as a local clock range.
func (e *Event) Window() string {
	return fmt.Sprintf("%s–%s",
		e.Start.Local().Format("15:04"),
		e.End.Local().Format("15:04"))
}

func (e *Event) String() string {
	return fmt.Sprintf("%s  %s", e.Window(), e.Title)
}
