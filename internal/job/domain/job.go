package domain

import "time"

type ID string

// Job is a posting owned by the user that created it. CreatedBy never
// changes; UpdatedAt is refreshed on every merge.
type Job struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      *string   `json:"salary"`
	Category    *string   `json:"category"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
