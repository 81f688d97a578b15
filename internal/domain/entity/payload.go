package entity

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"naguil/internal/errors"
)

// Payload is the type-specific data attached to a notification.
type Payload interface {
	// Type returns the notification type this payload belongs to.
	Type() NotificationType
	// BookingRef returns the related booking id, empty when the caller sent none.
	BookingRef() string
	// Data flattens the payload into the string map sent with the push message.
	Data() map[string]string
}

// ErrInvalidPayload is returned when a payload field is malformed for its type.
var ErrInvalidPayload = errors.New("invalid payload")

// BookingConfirmedPayload accompanies booking_confirmed.
type BookingConfirmedPayload struct {
	BookingID string
	Extra     map[string]string
}

// BookingRejectedPayload accompanies booking_rejected.
type BookingRejectedPayload struct {
	BookingID string
	Reason    string
	Extra     map[string]string
}

// BookingCancelledPayload accompanies booking_cancelled.
type BookingCancelledPayload struct {
	BookingID string
	Reason    string
	Extra     map[string]string
}

// NewBookingPayload accompanies new_booking staff broadcasts.
type NewBookingPayload struct {
	BookingID    string
	CustomerName string
	Date         string
	Time         string
	Guests       int
	Extra        map[string]string
}

func (p *BookingConfirmedPayload) Type() NotificationType { return TypeBookingConfirmed }
func (p *BookingConfirmedPayload) BookingRef() string     { return p.BookingID }
func (p *BookingConfirmedPayload) Data() map[string]string {
	return withType(p.Extra, TypeBookingConfirmed, map[string]string{"bookingId": p.BookingID})
}

func (p *BookingRejectedPayload) Type() NotificationType { return TypeBookingRejected }
func (p *BookingRejectedPayload) BookingRef() string     { return p.BookingID }
func (p *BookingRejectedPayload) Data() map[string]string {
	return withType(p.Extra, TypeBookingRejected, map[string]string{"bookingId": p.BookingID, "reason": p.Reason})
}

func (p *BookingCancelledPayload) Type() NotificationType { return TypeBookingCancelled }
func (p *BookingCancelledPayload) BookingRef() string     { return p.BookingID }
func (p *BookingCancelledPayload) Data() map[string]string {
	return withType(p.Extra, TypeBookingCancelled, map[string]string{"bookingId": p.BookingID, "reason": p.Reason})
}

func (p *NewBookingPayload) Type() NotificationType { return TypeNewBooking }
func (p *NewBookingPayload) BookingRef() string     { return p.BookingID }
func (p *NewBookingPayload) Data() map[string]string {
	fields := map[string]string{
		"bookingId":    p.BookingID,
		"customerName": p.CustomerName,
		"date":         p.Date,
		"time":         p.Time,
	}
	if p.Guests > 0 {
		fields["guests"] = strconv.Itoa(p.Guests)
	}

	return withType(p.Extra, TypeNewBooking, fields)
}

// DecodePayload builds the variant for t from loosely typed request data.
// Every field is optional; only present and malformed values are rejected.
// Keys not known to the variant are kept as Extra.
func DecodePayload(t NotificationType, raw map[string]any) (Payload, error) {
	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		fields[k] = stringify(v)
	}

	bookingID := take(fields, "bookingId")

	switch t {
	case TypeBookingConfirmed:
		return &BookingConfirmedPayload{BookingID: bookingID, Extra: fields}, nil
	case TypeBookingRejected:
		return &BookingRejectedPayload{BookingID: bookingID, Reason: take(fields, "reason"), Extra: fields}, nil
	case TypeBookingCancelled:
		return &BookingCancelledPayload{BookingID: bookingID, Reason: take(fields, "reason"), Extra: fields}, nil
	case TypeNewBooking:
		p := &NewBookingPayload{
			BookingID:    bookingID,
			CustomerName: take(fields, "customerName"),
			Date:         take(fields, "date"),
			Time:         take(fields, "time"),
			Extra:        fields,
		}
		if guests := take(fields, "guests"); guests != "" {
			n, err := strconv.Atoi(guests)
			if err != nil || n < 0 {
				return nil, errors.Wrapf(ErrInvalidPayload, "data.guests must be a non-negative integer, got %q", guests)
			}
			p.Guests = n
		}

		return p, nil
	default:
		return nil, errors.Wrapf(ErrInvalidPayload, "unknown notification type %q", t)
	}
}

func take(fields map[string]string, key string) string {
	v := strings.TrimSpace(fields[key])
	delete(fields, key)

	return v
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}

		return string(b)
	}
}

func withType(extra map[string]string, t NotificationType, fields map[string]string) map[string]string {
	out := make(map[string]string, len(extra)+len(fields)+1)
	maps.Copy(out, extra)
	for k, v := range fields {
		if v != "" {
			out[k] = v
		}
	}
	out["type"] = string(t)

	return out
}
