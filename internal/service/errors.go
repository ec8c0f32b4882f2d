package service

import (
	"fmt"
)

type ErrSchoolNotFound struct {
	error
}

func NewErrSchoolNotFound(name string) *ErrSchoolNotFound {
	return &ErrSchoolNotFound{fmt.Errorf("school entry '%s' not found", name)}
}

type ErrMappingExists struct {
	error
}

func NewErrMappingExists(name string) *ErrMappingExists {
	return &ErrMappingExists{fmt.Errorf("school entry already exists for '%s', set update_existing=true to update", name)}
}

type ErrInvalidSchoolName struct {
	error
}

func NewErrInvalidSchoolName(err error) *ErrInvalidSchoolName {
	return &ErrInvalidSchoolName{err}
}

type ErrCourseDataMissing struct {
	error
}

func NewErrCourseDataMissing(path string) *ErrCourseDataMissing {
	return &ErrCourseDataMissing{fmt.Errorf("invalid object path or file does not exist: %s", path)}
}

type ErrTaskSubmission struct {
	error
}

func NewErrTaskSubmission(taskName string, err error) *ErrTaskSubmission {
	return &ErrTaskSubmission{fmt.Errorf("failed to create task '%s': %v", taskName, err)}
}

type ErrTaskNotFound struct {
	error
}

func NewErrTaskNotFound(taskID string, err error) *ErrTaskNotFound {
	return &ErrTaskNotFound{fmt.Errorf("failed to fetch status for task '%s': %v", taskID, err)}
}

// ErrDashboardUnreachable is kept distinct from ErrTaskNotFound so a task
// dashboard outage does not masquerade as a missing task.
type ErrDashboardUnreachable struct {
	error
}

func NewErrDashboardUnreachable(err error) *ErrDashboardUnreachable {
	return &ErrDashboardUnreachable{fmt.Errorf("failed to connect to task dashboard: %v", err)}
}
