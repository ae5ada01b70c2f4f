package id

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var (
	reHex32  = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reDealID = regexp.MustCompile(`^[A-Z0-9]+-\d{13}-\d+$`)
)

func TestNewDealID_Format(t *testing.T) {
	got := NewDealID("BLVCK")

	if !reDealID.MatchString(got) {
		t.Fatalf("unexpected deal id format: %q", got)
	}

	parts := strings.SplitN(got, "-", 3)
	if parts[0] != "BLVCK" {
		t.Fatalf("prefix = %q, want BLVCK", parts[0])
	}

	// middle segment is unix millis close to now
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp segment not numeric: %v", err)
	}
	now := time.Now().UnixMilli()
	if ms < now-5_000 || ms > now+5_000 {
		t.Fatalf("timestamp %d not near now %d", ms, now)
	}
}

func TestNewDealID_SequenceMonotonic(t *testing.T) {
	prev := int64(-1)
	for i := 0; i < 50; i++ {
		parts := strings.SplitN(NewDealID("BLVCK"), "-", 3)
		n, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			t.Fatalf("sequence segment not numeric: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestNewDealID_Uniqueness(t *testing.T) {
	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewDealID("BLVCK")
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewDealID_CustomPrefix(t *testing.T) {
	if got := NewDealID("ACME"); !strings.HasPrefix(got, "ACME-") {
		t.Fatalf("prefix not applied: %q", got)
	}
}

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
