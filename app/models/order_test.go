package models

import (
	"testing"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
)

func TestCustomerRef(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  string
	}{
		{"user id wins", Order{UserID: "u1", CustomerID: "c1"}, "u1"},
		{"fallback to customer id", Order{CustomerID: "c1"}, "c1"},
		{"whitespace only", Order{UserID: "  "}, ""},
		{"both empty", Order{}, ""},
	}

	for _, tt := range tests {
		if got := tt.order.CustomerRef(); got != tt.want {
			t.Errorf("%s: CustomerRef() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsOpen(t *testing.T) {
	open := []string{
		consts.OrderStatusPending,
		consts.OrderStatusPreparing,
		consts.OrderStatusReady,
		consts.OrderStatusOutForDelivery,
	}
	for _, s := range open {
		if !(&Order{Status: s}).IsOpen() {
			t.Errorf("%q should be open", s)
		}
	}

	for _, s := range []string{consts.OrderStatusCompleted, consts.OrderStatusCancelled} {
		if (&Order{Status: s}).IsOpen() {
			t.Errorf("%q should not be open", s)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{5 * time.Minute, "5 min ago"},
		{59 * time.Minute, "59 min ago"},
		{90 * time.Minute, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
	}

	for _, tt := range tests {
		o := Order{CreatedAt: now.Add(-tt.ago)}
		if got := o.TimeAgo(now); got != tt.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}

	if got := (Order{}).TimeAgo(now); got != "Unknown" {
		t.Errorf("zero CreatedAt should be Unknown, got %q", got)
	}
}
