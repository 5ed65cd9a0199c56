package entity

import (
	"testing"
	"time"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

func TestUdharDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(7 * 24 * time.Hour)
	past := now.Add(-7 * 24 * time.Hour)

	cases := []struct {
		name  string
		total int64
		paid  int64
		due   time.Time
		want  enum.UdharStatus
	}{
		{"nothing paid, not due", 5000, 0, future, enum.UdharStatusUnpaid},
		{"partially paid, not due", 5000, 2000, future, enum.UdharStatusPartial},
		{"fully paid", 5000, 5000, future, enum.UdharStatusPaid},
		{"fully paid past due date stays paid", 5000, 5000, past, enum.UdharStatusPaid},
		{"nothing paid, past due", 5000, 0, past, enum.UdharStatusOverdue},
		{"partially paid, past due", 5000, 4999, past, enum.UdharStatusOverdue},
	}

	for _, c := range cases {
		u := UdharTransaction{Total: c.total, Paid: c.paid, DueDate: c.due}
		if got := u.DeriveStatus(now); got != c.want {
			t.Fatalf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestUdharRemaining(t *testing.T) {
	u := UdharTransaction{Total: 5000, Paid: 1250}
	if u.Remaining() != 3750 {
		t.Fatalf("expected remaining 3750, got %d", u.Remaining())
	}
}
