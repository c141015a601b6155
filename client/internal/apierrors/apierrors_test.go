package apierrors

import (
	"errors"
	"testing"
)

func TestClassifyHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Category
	}{
		{400, Irrecoverable},
		{404, Irrecoverable},
		{408, Recoverable},
		{429, Recoverable},
		{500, Recoverable},
		{503, Recoverable},
		{302, Recoverable},
	}
	for _, tc := range cases {
		got := ClassifyHTTPStatus(tc.status, errors.New("x")).Category
		if got != tc.want {
			t.Fatalf("status %d: got %v want %v", tc.status, got, tc.want)
		}
	}
}

func TestIsIrrecoverable(t *testing.T) {
	if !IsIrrecoverable(ClassifyHTTPStatus(404, errors.New("x"))) {
		t.Fatal("404 should be irrecoverable")
	}
	if IsIrrecoverable(ClassifyNetwork(errors.New("x"))) {
		t.Fatal("network errors should be recoverable")
	}
	if IsIrrecoverable(errors.New("plain")) {
		t.Fatal("unclassified errors should default to recoverable")
	}
}

func TestClassifiedError_Unwrap(t *testing.T) {
	base := errors.New("root cause")
	err := ClassifyHTTPStatus(500, base)
	if !errors.Is(err, base) {
		t.Fatal("unwrap chain broken")
	}
}
