package models

// Status is the workflow stage a project is in. Any status may change to
// any other status directly.
type Status string

const (
	StatusPaymentConfirmed Status = "PAYMENT_CONFIRMED"
	StatusOnboarding       Status = "ONBOARDING"
	StatusCopy             Status = "COPY"
	StatusDesign           Status = "DESIGN"
	StatusDevelopment      Status = "DEVELOPMENT"
	StatusCompleted        Status = "COMPLETED"
)

// AllStatuses lists the workflow stages in display order.
var AllStatuses = []Status{
	StatusPaymentConfirmed,
	StatusOnboarding,
	StatusCopy,
	StatusDesign,
	StatusDevelopment,
	StatusCompleted,
}

// IsValid reports whether s is one of the known workflow stages.
func (s Status) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Project is one client engagement as held by the project API.
// Timestamps stay textual: the API owns their format and a malformed value
// must not break listing or filtering.
type Project struct {
	ID          ID     `json:"id,omitempty"`
	ClientName  string `json:"clientName"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	OwnerID     string `json:"ownerId,omitempty"`
}

// FilterField names one field of FilterCriteria.
type FilterField string

const (
	FilterStatus     FilterField = "status"
	FilterClientName FilterField = "clientName"
	FilterStartDate  FilterField = "startDate"
	FilterEndDate    FilterField = "endDate"
)

// FilterCriteria narrows the dashboard list. Empty fields do not filter.
type FilterCriteria struct {
	Status     string `json:"status"`
	ClientName string `json:"clientName"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// IsEmpty reports whether no filter is active.
func (f FilterCriteria) IsEmpty() bool {
	return f == FilterCriteria{}
}

// LoadState is the state of the last full fetch.
type LoadState string

const (
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateError   LoadState = "error"
)

// LoadStatus is LoadState plus the message shown when it is LoadStateError.
type LoadStatus struct {
	State   LoadState `json:"state"`
	Message string    `json:"message,omitempty"`
}
