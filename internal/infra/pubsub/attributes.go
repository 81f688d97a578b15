package pubsub

import (
	"encoding/json"
	"strconv"

	"naguil/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys shared by every transport. The worker reads request_id for tracing.
const (
	AttrEventID          = "event_id"
	AttrNotificationType = "notification_type"
	AttrTarget           = "target"
	AttrRequestID        = "request_id"
)

func eventAttributes(event *service.DispatchEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID:          event.EventID,
		AttrNotificationType: event.NotificationType,
	}
	if event.Target != "" {
		attributes[AttrTarget] = event.Target
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// recipientKey groups events by recipient so one user's or one branch's
// notifications keep their publish order on partitioned transports.
func recipientKey(event *service.DispatchEvent) string {
	switch {
	case event.UserID != "":
		return "user:" + event.UserID
	case event.BranchID != nil:
		return "branch:" + strconv.FormatInt(*event.BranchID, 10)
	case event.BranchName != "":
		return "branch-name:" + event.BranchName
	default:
		return event.EventID
	}
}

func encodeEvent(event *service.DispatchEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode dispatch event %s", event.EventID)
	}

	return data, nil
}
