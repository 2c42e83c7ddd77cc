package model

// Game is an entry in the fixed catalog of games the client offers.
type Game struct {
	ID   string
	Name string
}

// Games returns the catalog rendered as selectable cards, in display order.
func Games() []Game {
	return []Game{
		{ID: "lol", Name: "League of Legends"},
		{ID: "valorant", Name: "Valorant"},
		{ID: "csgo", Name: "Counter-Strike"},
		{ID: "fortnite", Name: "Fortnite"},
	}
}

// GameName returns the display name for a game identifier, falling back to
// the identifier itself for games not in the catalog.
func GameName(id string) string {
	for _, g := range Games() {
		if g.ID == id {
			return g.Name
		}
	}
	return id
}
