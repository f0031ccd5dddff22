package domain

import (
	"errors"
	"testing"
)

func TestStoreError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  StoreError
		want string
	}{
		{
			name: "with path and message",
			err:  StoreError{Op: "parse", Path: "tasks.json", Message: "not a list"},
			want: "store parse [tasks.json]: not a list",
		},
		{
			name: "with path and underlying error",
			err:  StoreError{Op: "read", Path: "tasks.json", Err: errors.New("permission denied")},
			want: "store read [tasks.json]: permission denied",
		},
		{
			name: "with message only",
			err:  StoreError{Op: "decode", Message: "bad task"},
			want: "store decode: bad task",
		},
		{
			name: "with underlying error",
			err:  StoreError{Op: "read", Err: errors.New("EOF")},
			want: "store read: EOF",
		},
		{
			name: "minimal",
			err:  StoreError{Op: "parse"},
			want: "store parse failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("StoreError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreError_Unwrap(t *testing.T) {
	err := &StoreError{Op: "parse", Err: ErrNotList}

	if !errors.Is(err, ErrNotList) {
		t.Errorf("errors.Is(err, ErrNotList) = false, want true")
	}

	var storeErr *StoreError
	if !errors.As(error(err), &storeErr) {
		t.Fatal("errors.As failed")
	}
	if storeErr.Op != "parse" {
		t.Errorf("Op = %v, want parse", storeErr.Op)
	}
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("bad yaml")
	err := &ConfigError{Op: "load", Path: ".ncs-gantt.yaml", Err: underlying}

	if got, want := err.Error(), "config load [.ncs-gantt.yaml]: bad yaml"; got != want {
		t.Errorf("Error() = %v, want %v", got, want)
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}

	noPath := &ConfigError{Op: "save", Err: underlying}
	if got, want := noPath.Error(), "config save: bad yaml"; got != want {
		t.Errorf("Error() = %v, want %v", got, want)
	}
}
