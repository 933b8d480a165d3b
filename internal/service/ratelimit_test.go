package service_test

import (
	"testing"

	"github.com/msomdec/devconnect/internal/service"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	tb := service.NewTokenBucket(1, 3) // rate=1/s, capacity=3

	// Should allow 3 requests immediately (full bucket).
	for i := 0; i < 3; i++ {
		if !tb.Allow("test-key") {
			t.Fatalf("request %d should be allowed (bucket not yet empty)", i+1)
		}
	}

	// 4th request should be denied (bucket empty).
	if tb.Allow("test-key") {
		t.Fatal("4th request should be denied (bucket empty)")
	}
}

func TestTokenBucket_DifferentIPsAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(1, 1) // capacity=1

	if !tb.Allow("203.0.113.1") {
		t.Fatal("first IP's first request should be allowed")
	}
	if tb.Allow("203.0.113.1") {
		t.Fatal("first IP's second request should be denied")
	}

	// The second IP has its own bucket.
	if !tb.Allow("203.0.113.2") {
		t.Fatal("second IP's first request should be allowed (independent bucket)")
	}
}

func TestTokenBucket_NewKeyStartsFull(t *testing.T) {
	tb := service.NewTokenBucket(10, 5)

	for i := 0; i < 5; i++ {
		if !tb.Allow("new-key") {
			t.Fatalf("new key request %d should be allowed (starts full)", i+1)
		}
	}
	if tb.Allow("new-key") {
		t.Fatal("6th request should be denied")
	}
}

func TestTokenBucket_ZeroRateNeverRefills(t *testing.T) {
	tb := service.NewTokenBucket(0, 2) // never refills

	if !tb.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if !tb.Allow("k") {
		t.Fatal("second request should be allowed")
	}
	if tb.Allow("k") {
		t.Fatal("third request should be denied (no refill)")
	}
}
