package handlers

import (
	"testing"
	"time"
)

func TestRefreshAfter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		closeAt time.Time
		want    int
	}{
		{now.Add(2 * time.Second), 2},
		{now.Add(1500 * time.Millisecond), 2},
		{now.Add(100 * time.Millisecond), 1},
		{now, 1},
		{now.Add(-time.Minute), 1},
	}
	for _, tc := range cases {
		if got := refreshAfter(tc.closeAt, now); got != tc.want {
			t.Errorf("refreshAfter(%s) = %d, want %d", tc.closeAt.Sub(now), got, tc.want)
		}
	}
}
