package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "NORMAL", ModeNormal.String())
	assert.Equal(t, "SEARCH", ModeSearch.String())
	assert.Equal(t, "GOTO", ModeGoto.String())
	assert.Equal(t, "UNKNOWN", Mode(99).String())
}

func TestNewToast(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	info := NewToast(ToastInfo, "loaded", now)
	assert.Equal(t, now.Add(ToastShort), info.Expires)

	failed := NewToast(ToastError, "failed", now)
	assert.Equal(t, now.Add(ToastLong), failed.Expires)
	assert.Equal(t, "failed", failed.Message)
}

func TestActiveToasts(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := []Toast{
		NewToast(ToastInfo, "short", now),
		NewToast(ToastError, "long", now),
	}

	assert.Len(t, ActiveToasts(toasts, now.Add(time.Second)), 2)

	later := ActiveToasts(toasts, now.Add(5*time.Second))
	if assert.Len(t, later, 1) {
		assert.Equal(t, "long", later[0].Message)
	}

	assert.Empty(t, ActiveToasts(toasts, now.Add(time.Minute)))
	assert.NotNil(t, ActiveToasts(nil, now))
}
