package portalsdk

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Job struct {
	ID          string    `json:"id"`
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

// Identity is what the server signed into the token, decoded locally
// without a round-trip.
type Identity struct {
	UserID   string
	Email    string
	Username string
}

type JobFields struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      string `json:"salary,omitempty"`
	Category    string `json:"category,omitempty"`
}

// JobUpdate is a partial update. Zero-value required fields are left
// unchanged by the server. Salary and Category are only sent when the
// corresponding Set flag is true; a nil pointer then clears the field.
type JobUpdate struct {
	Title       string
	Company     string
	Description string
	Location    string
	Salary      *string
	SalarySet   bool
	Category    *string
	CategorySet bool
}

func (u JobUpdate) payload() map[string]any {
	p := map[string]any{}
	if u.Title != "" {
		p["title"] = u.Title
	}
	if u.Company != "" {
		p["company"] = u.Company
	}
	if u.Description != "" {
		p["description"] = u.Description
	}
	if u.Location != "" {
		p["location"] = u.Location
	}
	if u.SalarySet {
		p["salary"] = u.Salary
	}
	if u.CategorySet {
		p["category"] = u.Category
	}
	return p
}

type signUpResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type signInResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type jobResponse struct {
	Message string `json:"message"`
	Job     Job    `json:"job"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
