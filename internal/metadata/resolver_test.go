package metadata

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider records the codes it was asked about and replies from a
// canned table.
type fakeProvider struct {
	name    string
	results map[string]*Result
	err     error
	calls   []string
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) LookupByISBN(_ context.Context, code string) (*Result, error) {
	f.calls = append(f.calls, code)
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.results[code]; ok {
		return r, nil
	}
	return nil, ErrNoMatch
}

func TestResolve_PrimaryHitShortCircuits(t *testing.T) {
	primary := &fakeProvider{
		name:    "primary",
		results: map[string]*Result{"9780306406157": {Title: "Primary Hit"}},
	}
	secondary := &fakeProvider{name: "secondary"}

	result := NewResolver(primary, secondary).Resolve(context.Background(), "9780306406157")

	if result == nil || result.Title != "Primary Hit" {
		t.Fatalf("expected primary result, got %+v", result)
	}
	if len(primary.calls) != 1 {
		t.Errorf("expected one primary call, got %v", primary.calls)
	}
	if len(secondary.calls) != 0 {
		t.Errorf("secondary must not be invoked on primary hit, got %v", secondary.calls)
	}
}

func TestResolve_FallsBackToISBN10(t *testing.T) {
	primary := &fakeProvider{
		name:    "primary",
		results: map[string]*Result{"0306406152": {Title: "Legacy Edition"}},
	}

	result := NewResolver(primary).Resolve(context.Background(), "9780306406157")

	if result == nil || result.Title != "Legacy Edition" {
		t.Fatalf("expected ISBN-10 retry to hit, got %+v", result)
	}
	want := []string{"9780306406157", "0306406152"}
	if len(primary.calls) != 2 || primary.calls[0] != want[0] || primary.calls[1] != want[1] {
		t.Errorf("expected calls %v, got %v", want, primary.calls)
	}
}

func TestResolve_SecondaryAfterPrimaryFailure(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("connection refused")}
	secondary := &fakeProvider{
		name:    "secondary",
		results: map[string]*Result{"9780306406157": {Title: "Secondary Hit"}},
	}

	result := NewResolver(primary, secondary).Resolve(context.Background(), "9780306406157")

	if result == nil || result.Title != "Secondary Hit" {
		t.Fatalf("expected secondary result, got %+v", result)
	}
	if len(primary.calls) != 2 {
		t.Errorf("expected primary tried with both forms, got %v", primary.calls)
	}
}

func TestResolve_AllFailReturnsNil(t *testing.T) {
	primary := &fakeProvider{name: "primary"}
	secondary := &fakeProvider{name: "secondary"}

	result := NewResolver(primary, secondary).Resolve(context.Background(), "9780306406157")

	if result != nil {
		t.Fatalf("expected nil when every call misses, got %+v", result)
	}
	// Full chain: primary 13, primary 10, secondary 13, secondary 10.
	if len(primary.calls) != 2 || len(secondary.calls) != 2 {
		t.Errorf("expected 2+2 calls, got %v / %v", primary.calls, secondary.calls)
	}
}

func TestResolve_No979Retry(t *testing.T) {
	primary := &fakeProvider{name: "primary"}

	NewResolver(primary).Resolve(context.Background(), "9790306406157")

	if len(primary.calls) != 1 {
		t.Errorf("979 codes have no ISBN-10 form, expected a single call, got %v", primary.calls)
	}
}

func TestResolve_CancelledContextAbandonsChain(t *testing.T) {
	primary := &fakeProvider{
		name:    "primary",
		results: map[string]*Result{"9780306406157": {Title: "Hit"}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewResolver(primary).Resolve(ctx, "9780306406157")

	if result != nil {
		t.Fatalf("expected nil for cancelled context, got %+v", result)
	}
	if len(primary.calls) != 0 {
		t.Errorf("expected no provider calls after cancellation, got %v", primary.calls)
	}
}
