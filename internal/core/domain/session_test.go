package domain

import "testing"

func TestSessionState_Complete(t *testing.T) {
	full := SessionState{Token: "t", Username: "u", FullName: "f", Role: "r", Email: "e"}
	if !full.Complete() {
		t.Fatalf("expected complete state")
	}

	partial := full
	partial.Email = "  "
	if partial.Complete() {
		t.Fatalf("blank email must make the state incomplete")
	}

	var missing *SessionState
	if missing.Complete() {
		t.Fatalf("nil state must not be complete")
	}
}

func TestNewSessionState_CopiesResult(t *testing.T) {
	r := &LoginResult{Token: "tok", Username: "buyer1", FullName: "Alice Johnson", Role: RoleBuyer, Email: "alice.johnson@demo.com"}
	s := NewSessionState(r)
	if s.Token != "tok" || s.Username != "buyer1" || s.FullName != "Alice Johnson" || s.Role != RoleBuyer || s.Email != "alice.johnson@demo.com" {
		t.Fatalf("unexpected state: %+v", s)
	}
	if !s.Complete() {
		t.Fatalf("expected complete state")
	}
}
