package model

import "time"

// Creator identifies the user who opened a room.
type Creator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Room is a matchmaking entry for a specific game. Rooms are owned by the
// backend; the client only holds transient copies fetched per game selection.
type Room struct {
	ID            string   `json:"_id"`
	Title         string   `json:"title"`
	Game          string   `json:"game"`
	PlayersNeeded int      `json:"playersNeeded"`
	Description   string   `json:"description"`
	Creator       Creator  `json:"creator"`
	Members       []string `json:"members"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
}

// IsFull reports whether the room has reached its needed player count.
// The backend enforces the capacity; the client only disables joining.
func (r Room) IsFull() bool {
	return len(r.Members) >= r.PlayersNeeded
}

// createdAtLayouts covers the timestamp shapes the backend emits: RFC 3339
// and naive ISO 8601 without a zone offset.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// CreatedTime parses the room's creation timestamp. ok is false when the
// value is empty or in an unknown format.
func (r Room) CreatedTime() (t time.Time, ok bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, r.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
