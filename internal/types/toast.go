package types

import "time"

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast lifetimes by level
const (
	ToastShort = 3 * time.Second
	ToastLong  = 8 * time.Second
)

// NewToast creates a toast that expires after the lifetime for its level:
// errors and warnings stay longer
func NewToast(level ToastLevel, message string, now time.Time) Toast {
	ttl := ToastShort
	if level >= ToastWarning {
		ttl = ToastLong
	}
	return Toast{Level: level, Message: message, Expires: now.Add(ttl)}
}

// ActiveToasts returns the toasts that have not expired at now
func ActiveToasts(toasts []Toast, now time.Time) []Toast {
	active := make([]Toast, 0, len(toasts))
	for _, t := range toasts {
		if t.Expires.After(now) {
			active = append(active, t)
		}
	}
	return active
}
