package cooldown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeHistory is a simple in-memory stand-in for the history store.
type fakeHistory struct {
	raw string
	err error
}

func (f *fakeHistory) LastChangeTimestamp(ctx context.Context, userID int64) (string, error) {
	return f.raw, f.err
}

func newTestGate(raw string, err error, cooldownSeconds int) *Gate {
	return NewGate(&fakeHistory{raw: raw, err: err}, cooldownSeconds, zerolog.Nop())
}

func TestCheck_NoHistoryIsReady(t *testing.T) {
	gate := newTestGate("", nil, 43200)

	status, err := gate.Check(context.Background(), 1, time.Now().UTC())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status.State != Ready {
		t.Fatalf("expected Ready, got %v", status)
	}
}

func TestCheck_CooldownBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		elapsed   time.Duration
		wantState State
		remaining time.Duration
	}{
		{"one second early", 43199 * time.Second, Waiting, time.Second},
		{"exactly elapsed", 43200 * time.Second, Ready, 0},
		{"long elapsed", 100000 * time.Second, Ready, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			last := now.Add(-tc.elapsed).Format("2006-01-02 15:04:05")
			gate := newTestGate(last, nil, 43200)

			status, err := gate.Check(context.Background(), 1, now)
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if status.State != tc.wantState {
				t.Fatalf("got state %v, want %v", status.State, tc.wantState)
			}
			if status.Remaining != tc.remaining {
				t.Fatalf("got remaining %v, want %v", status.Remaining, tc.remaining)
			}
		})
	}
}

func TestCheck_UnparseableTimestampFailsOpen(t *testing.T) {
	gate := newTestGate("definitely not a timestamp", nil, 43200)

	status, err := gate.Check(context.Background(), 1, time.Now().UTC())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status.State != Ready {
		t.Fatalf("expected fail-open Ready, got %v", status)
	}
}

func TestCheck_StorageErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	gate := newTestGate("", wantErr, 43200)

	_, err := gate.Check(context.Background(), 1, time.Now().UTC())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestParseStoredTimestamp(t *testing.T) {
	want := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
	}{
		{"plain datetime assumed UTC", "2025-01-02 03:04:05"},
		{"rfc3339 utc", "2025-01-02T03:04:05Z"},
		{"rfc3339 with offset", "2025-01-02T05:04:05+02:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStoredTimestamp(tc.raw)
			if err != nil {
				t.Fatalf("ParseStoredTimestamp(%q): %v", tc.raw, err)
			}
			if !got.Equal(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}

	if _, err := ParseStoredTimestamp("garbage"); err == nil {
		t.Fatal("expected error for unparseable input")
	}
}

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{1, "0:01"},
		{59, "0:01"},
		{60, "0:01"},
		{61, "0:02"},
		{3599, "1:00"},
		{3600, "1:00"},
		{3661, "1:02"},
		{43200, "12:00"},
		{-5, "0:00"},
	}

	for _, tc := range cases {
		got := FormatRemaining(time.Duration(tc.seconds) * time.Second)
		if got != tc.want {
			t.Errorf("FormatRemaining(%ds) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
