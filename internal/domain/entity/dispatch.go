package entity

// TargetKind says whether an intent addresses one user or a branch's staff.
type TargetKind string

const (
	TargetUser  TargetKind = "user"
	TargetStaff TargetKind = "staff"
)

// DispatchIntent is a request to notify one user or the staff of a branch.
// Exactly one of UserID or Branch must be set.
type DispatchIntent struct {
	Type    NotificationType
	Title   string
	Body    string
	Data    map[string]any
	UserID  string
	Branch  BranchSelector
	Target  TargetKind // Optional; when set it must agree with the populated fields.
	Payload Payload    // Filled in by validation.
}

// DispatchStatus discriminates the outcomes of a dispatch.
type DispatchStatus string

const (
	StatusSent                   DispatchStatus = "sent"
	StatusSuppressedByPreference DispatchStatus = "suppressed_by_preference"
	StatusNoActiveDevices        DispatchStatus = "no_active_devices"
	StatusNoRecipients           DispatchStatus = "no_recipients"
)

// DispatchResult is returned for every structurally valid intent, including
// ones that resolved to nothing to send.
type DispatchResult struct {
	Success bool           `json:"success"`
	Status  DispatchStatus `json:"status"`
	Sent    int            `json:"sent"`
	Failed  int            `json:"failed"`
	Message string         `json:"message,omitempty"`
}

// NewSentResult reports a dispatch that reached the gateway.
func NewSentResult(sent, failed int) *DispatchResult {
	return &DispatchResult{Success: true, Status: StatusSent, Sent: sent, Failed: failed}
}

// NewEmptyResult reports a dispatch that resolved to nothing to send.
func NewEmptyResult(status DispatchStatus) *DispatchResult {
	return &DispatchResult{Success: true, Status: status, Message: status.message()}
}

func (s DispatchStatus) message() string {
	switch s {
	case StatusSuppressedByPreference:
		return "Notification suppressed by user preference"
	case StatusNoActiveDevices:
		return "No active devices found"
	case StatusNoRecipients:
		return "No staff found for branch"
	default:
		return ""
	}
}
