package entity

import "testing"

func TestDecisionFromString(t *testing.T) {
	tests := []struct {
		action string
		want   RequestStatus
		ok     bool
	}{
		{action: "approved", want: RequestStatusApproved, ok: true},
		{action: "rejected", want: RequestStatusRejected, ok: true},
		{action: "pending", ok: false},
		{action: "Approved", ok: false},
		{action: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got, ok := DecisionFromString(tt.action)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("DecisionFromString(%q) = (%q, %v), want (%q, %v)", tt.action, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRequestStatusIsTerminal(t *testing.T) {
	if RequestStatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
	if !RequestStatusApproved.IsTerminal() || !RequestStatusRejected.IsTerminal() {
		t.Fatal("approved and rejected must be terminal")
	}
}
