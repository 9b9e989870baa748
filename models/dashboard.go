package models

import "time"

// Dashboard widget records. The presentation layer consuming these is
// an external client of GET /dashboard; the server only stores and
// serves the aggregate.

const (
	TaskTypeUpcoming = "upcoming"
	TaskTypeToday    = "today"
)

type Mentor struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Avatar   string  `json:"avatar"`
	Tasks    int     `json:"tasks"`
	Rating   float64 `json:"rating"`
	Followed bool    `json:"followed"`
}

type Task struct {
	Title        string     `json:"title"`
	Role         string     `json:"role"`
	Progress     int        `json:"progress"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Image        string     `json:"image"`
	Participants []string   `json:"participants"`
	Duration     string     `json:"duration,omitempty"`
	DetailItems  []string   `json:"detailItems,omitempty"`
	Type         string     `json:"type"`
}

type Summary struct {
	RunningScore int `json:"runningScore"`
	RunningTotal int `json:"runningTotal"`
	MeterPercent int `json:"meterPercent"`
}

type Activity struct {
	Points []int  `json:"points"`
	Range  string `json:"range"`
}

type Calendar struct {
	MonthLabel string `json:"monthLabel"`
	Days       []int  `json:"days"`
	ActiveDay  int    `json:"activeDay"`
}

// Dashboard is the read-only aggregate served to the presentation layer.
type Dashboard struct {
	Summary       Summary  `json:"summary"`
	Activity      Activity `json:"activity"`
	Mentors       []Mentor `json:"mentors"`
	UpcomingTasks []Task   `json:"upcomingTasks"`
	TodayTask     *Task    `json:"todayTask"`
	Calendar      Calendar `json:"calendar"`
}
