package v1alpha1

// School is a single entry of the end-user school index.
type School struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}

// SchoolList is the end-user listing of all schools with course data.
type SchoolList struct {
	Schools []School `json:"schools"`
	Total   int      `json:"total"`
}

// SchoolEntry is the admin view of a school mapping.
type SchoolEntry struct {
	Name           string `json:"name"`
	CourseDataPath string `json:"course_data_path"`
}

// Pagination carries the page arithmetic of a paginated admin listing.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

type SchoolEntryList struct {
	Schools    []SchoolEntry `json:"schools"`
	Pagination Pagination    `json:"pagination"`
}

// SchoolEntryReply acknowledges a create/update of a school mapping.
type SchoolEntryReply struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    SchoolEntryData `json:"data"`
}

type SchoolEntryData struct {
	SchoolName     string `json:"school_name"`
	CourseDataPath string `json:"course_data_path"`
	Action         string `json:"action"`
}

// StatusReply is a generic success acknowledgement.
type StatusReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TaskInfo merges the locally persisted task record with the live status
// fetched from the task dashboard.
type TaskInfo struct {
	TaskName  string `json:"task_name"`
	TaskID    string `json:"task_id"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Result    any    `json:"result,omitempty"`
	Runtime   any    `json:"runtime,omitempty"`
	Worker    any    `json:"worker,omitempty"`
}

type TaskList struct {
	Tasks      []TaskInfo `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

// TaskSubmitReply acknowledges a task submission.
type TaskSubmitReply struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    TaskSubmitData `json:"data"`
}

type TaskSubmitData struct {
	TaskID     string `json:"task_id"`
	TaskStatus string `json:"task_status"`
}

// FlowerHealth reports the task dashboard liveness.
type FlowerHealth struct {
	Healthy   bool   `json:"healthy"`
	FlowerURL string `json:"flower_url"`
}

// ObjectItem is a single entry of an object-store listing, either a
// directory (common prefix) or a file.
type ObjectItem struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	Type         string `json:"type"`
	Size         *int64 `json:"size,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// ObjectPagination is the continuation-token cursor of an object listing.
type ObjectPagination struct {
	IsTruncated           bool    `json:"is_truncated"`
	NextContinuationToken *string `json:"next_continuation_token"`
	KeyCount              int     `json:"key_count"`
}

type ObjectListing struct {
	Items      []ObjectItem     `json:"items"`
	Pagination ObjectPagination `json:"pagination"`
}

// Error is the structured error payload returned on every failure.
type Error struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}
