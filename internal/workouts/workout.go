package workouts

import (
	"time"
)

type Metrics struct {
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Steps    int     `json:"steps"`
}

type Goal struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Activity string `json:"activity"`
	Metrics
	UpdatedAt time.Time `json:"updatedAt"`
}

type Entry struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Activity string `json:"activity"`
	Date     Date   `json:"date"`
	Metrics
	CreatedAt time.Time `json:"createdAt"`
}

// User is the per-user workout record, created with the first goal.
type User struct {
	Username string   `json:"username"`
	Age      *int     `json:"age,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

// UserAttrs are applied to the workout record on goal save. Nil fields are left as they are.
type UserAttrs struct {
	Age    *int     `json:"age,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

type EntryInput struct {
	Activity string `json:"activity"`
	Date     string `json:"date"`
	Metrics
}

type GoalInput struct {
	Activity string `json:"activity"`
	Metrics
	UserAttrs
}

type EntryParams struct {
	Username string
	Activity string
	From     *Date
	To       *Date
}

type Summary struct {
	Username   string   `json:"username"`
	Age        *int     `json:"age,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Goals      []Goal   `json:"goals"`
	Activities []Entry  `json:"activities"`
}
