package model

// JokeType tells whether a joke is a one-liner or a setup/delivery pair
type JokeType string

const (
	JokeTypeSingle  JokeType = "single"
	JokeTypeTwoPart JokeType = "twopart"
)

// Joke mirrors the subset of the joke provider's payload the front-end renders
type Joke struct {
	Error    bool     `json:"error"`
	Category string   `json:"category,omitempty"`
	Type     JokeType `json:"type"`
	Joke     string   `json:"joke,omitempty"`
	Setup    string   `json:"setup,omitempty"`
	Delivery string   `json:"delivery,omitempty"`
	ID       int      `json:"id,omitempty"`
	Lang     string   `json:"lang,omitempty"`
}

// Usable reports whether the joke carries the text its type requires
func (j *Joke) Usable() bool {
	switch j.Type {
	case JokeTypeSingle:
		return j.Joke != ""
	case JokeTypeTwoPart:
		return j.Setup != "" && j.Delivery != ""
	default:
		return false
	}
}
