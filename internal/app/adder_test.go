package app

import (
	"context"
	"errors"
	"testing"

	"github.com/tally-labs/tally/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// fakeSource implements ports.ValueSource and records how often it was fetched.
type fakeSource struct {
	value int64
	err   error
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.value, nil
}

func TestAdder_Add(t *testing.T) {
	tests := []struct {
		name string
		base int64
		y    int64
		want int64
	}{
		{"stub operands", 7, 3, 10},
		{"zero increment", 42, 0, 42},
		{"negative increment", 5, -8, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{value: tt.base}
			a := NewAdder(mockLogger{})

			got, err := a.Add(context.Background(), src, tt.y)
			if err != nil {
				t.Fatalf("Add() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Add() = %d, want %d", got, tt.want)
			}
			if src.calls != 1 {
				t.Errorf("Fetch calls = %d, want 1", src.calls)
			}
		})
	}
}

func TestAdder_Add_SourceError(t *testing.T) {
	srcErr := errors.New("unreachable")
	src := &fakeSource{err: srcErr}
	a := NewAdder(mockLogger{})

	got, err := a.Add(context.Background(), src, 5)

	if !errors.Is(err, srcErr) {
		t.Fatalf("Add() error = %v, want %v", err, srcErr)
	}
	// The error must propagate untouched, not wrapped or rephrased.
	if err.Error() != "unreachable" {
		t.Errorf("Add() error message = %q, want %q", err.Error(), "unreachable")
	}
	if got != 0 {
		t.Errorf("Add() = %d on failure, want 0", got)
	}
	if src.calls != 1 {
		t.Errorf("Fetch calls = %d, want 1", src.calls)
	}
}

func TestAdder_Add_FetchFunc(t *testing.T) {
	calls := 0
	fetch := ports.FetchFunc(func(ctx context.Context) (int64, error) {
		calls++
		return 7, nil
	})
	a := NewAdder(mockLogger{})

	got, err := a.Add(context.Background(), fetch, 0)
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("Add() = %d, want 7", got)
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}
