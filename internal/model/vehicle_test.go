package model

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-15T09:30:00Z", time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"2024-03-15T09:30:00", time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"2024/03/15 09:30:00", time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.in)
		if !ok {
			t.Fatalf("ParseDate(%q) not recognized", c.in)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "soon", "15/03/2024", "2024-13-40"} {
		if _, ok := ParseDate(in); ok {
			t.Fatalf("ParseDate(%q) unexpectedly succeeded", in)
		}
	}
}

func TestVehicleTimes(t *testing.T) {
	t.Parallel()
	v := Vehicle{AuctionDateTime: "2024/04/15 09:00:00"}
	v.Details.Ownership.DateOfRegistration = "2021-06-01"

	if got, ok := v.AuctionTime(); !ok || got.Month() != time.April {
		t.Fatalf("AuctionTime = %v ok=%v", got, ok)
	}
	if got, ok := v.RegistrationTime(); !ok || got.Year() != 2021 {
		t.Fatalf("RegistrationTime = %v ok=%v", got, ok)
	}

	var empty Vehicle
	if _, ok := empty.AuctionTime(); ok {
		t.Fatal("empty auction date parsed")
	}
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{Token: "auth-token-x", ExpiresAt: now.Add(time.Hour)}

	if s.IsExpired(now) {
		t.Fatal("live session reported expired")
	}
	if !s.IsExpired(now.Add(time.Hour)) {
		t.Fatal("the expiry instant itself must count as expired")
	}
	if got := s.Remaining(now); got != time.Hour {
		t.Fatalf("remaining = %v", got)
	}
	if got := s.Remaining(now.Add(2 * time.Hour)); got != 0 {
		t.Fatalf("remaining past expiry = %v, want 0", got)
	}

	var nilSess *Session
	if !nilSess.IsExpired(now) {
		t.Fatal("nil session must be expired")
	}
	if nilSess.Remaining(now) != 0 {
		t.Fatal("nil session must have no time remaining")
	}
}
