package project

import "time"

// Entry records one rendered report saved in the project.
type Entry struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Sheet     string    `json:"sheet,omitempty"`
	Kind      string    `json:"kind"`
	File      string    `json:"file"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	CreatedAt time.Time `json:"created_at"`
}
