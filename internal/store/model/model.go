package model

import "time"

// SchoolMapping associates a school identifier with the object-store path of
// its course catalog.
type SchoolMapping struct {
	Name       string
	ObjectPath string
}

// TaskRecord is the locally persisted part of an async scraping task.
// Live status always comes from the task dashboard, never from here.
type TaskRecord struct {
	TaskName  string
	TaskID    string
	Timestamp time.Time
	Status    string
}
