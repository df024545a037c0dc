package models

// Task lives inside exactly one date bucket of its owner's record.
// ID is a millisecond timestamp, bumped past any sibling on collision.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// DayStat summarizes one day's bucket for the 7-day analysis view.
type DayStat struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Tasks     []Task `json:"tasks"`
}
