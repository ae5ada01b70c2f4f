package deal

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{
		"new_deal", "offer_sent", "offer_accepted", "walkthrough_scheduled",
		"walkthrough_completed", "under_contract", "disposition",
		"end_deposit_collected", "clear_to_close", "sold", "passed",
	} {
		if _, err := ParseStatus(raw); err != nil {
			t.Fatalf("ParseStatus(%q) = %v", raw, err)
		}
	}
	if _, err := ParseStatus("negotiating"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestIsTerminal(t *testing.T) {
	if !StatusSold.IsTerminal() || !StatusPassed.IsTerminal() {
		t.Fatal("sold and passed are terminal")
	}
	if StatusNewDeal.IsTerminal() || StatusClearToClose.IsTerminal() {
		t.Fatal("pipeline states are not terminal")
	}
}

func TestRules_PermissiveAllowsJumps(t *testing.T) {
	r := Rules{Mode: ModePermissive}

	// arbitrary forward jump
	if err := r.Check(StatusNewDeal, StatusUnderContract); err != nil {
		t.Fatalf("jump rejected: %v", err)
	}
	// backward movement
	if err := r.Check(StatusUnderContract, StatusOfferSent); err != nil {
		t.Fatalf("backward move rejected: %v", err)
	}
	// passing from anywhere non-terminal
	if err := r.Check(StatusDisposition, StatusPassed); err != nil {
		t.Fatalf("pass rejected: %v", err)
	}
}

func TestRules_TerminalHasNoOutgoingTransitions(t *testing.T) {
	for _, mode := range []Mode{ModePermissive, ModeStrict} {
		r := Rules{Mode: mode}
		for _, from := range []Status{StatusSold, StatusPassed} {
			if err := r.Check(from, StatusNewDeal); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("mode %s: from %s err = %v, want ErrInvalidTransition", mode, from, err)
			}
		}
	}
}

func TestRules_UnknownTargetRejected(t *testing.T) {
	r := Rules{Mode: ModePermissive}
	if err := r.Check(StatusNewDeal, Status("negotiating")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestRules_StrictRequiresNextStep(t *testing.T) {
	r := Rules{Mode: ModeStrict}

	if err := r.Check(StatusNewDeal, StatusOfferSent); err != nil {
		t.Fatalf("next step rejected: %v", err)
	}
	if err := r.Check(StatusNewDeal, StatusUnderContract); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("jump allowed in strict mode: %v", err)
	}
	if err := r.Check(StatusClearToClose, StatusSold); err != nil {
		t.Fatalf("closing rejected: %v", err)
	}
	// passed stays reachable from anywhere
	if err := r.Check(StatusWalkthroughScheduled, StatusPassed); err != nil {
		t.Fatalf("pass rejected in strict mode: %v", err)
	}
}

func TestParseMode(t *testing.T) {
	if _, err := ParseMode("permissive"); err != nil {
		t.Fatalf("permissive: %v", err)
	}
	if _, err := ParseMode("strict"); err != nil {
		t.Fatalf("strict: %v", err)
	}
	if _, err := ParseMode("loose"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
