package request

// RollRequest is the request body for rolling the die
type RollRequest struct {
	// Animate plays the roll as a sequence of die_frame events before resolving
	Animate bool `json:"animate"`
}
