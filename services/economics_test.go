package services

import (
	"testing"
	"time"

	"github.com/dgeemedia/chrenis/models"
)

func TestValidTerm(t *testing.T) {
	if !ValidTerm(Term4Mo) || !ValidTerm(Term12Mo) {
		t.Fatal("supported terms rejected")
	}
	for _, term := range []string{"", "6mo", "4", "12", "4MO"} {
		if ValidTerm(term) {
			t.Fatalf("term %q accepted", term)
		}
	}
}

func TestComputeQuote_Payout(t *testing.T) {
	project := &models.Project{ROI4moPercent: 10, ROI12moPercent: 40}
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	q := ComputeQuote(project, 5000, Term4Mo, now)
	if q.ROIPercent != 10 {
		t.Fatalf("roi = %v, want 10", q.ROIPercent)
	}
	if q.ExpectedPayout != 5500 {
		t.Fatalf("payout = %v, want 5500", q.ExpectedPayout)
	}
	if !q.StartDate.Equal(now) {
		t.Fatalf("start = %v, want %v", q.StartDate, now)
	}
	if want := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC); !q.MaturityDate.Equal(want) {
		t.Fatalf("maturity = %v, want %v", q.MaturityDate, want)
	}
}

func TestComputeQuote_TermSelectsRate(t *testing.T) {
	project := &models.Project{ROI4moPercent: 8, ROI12moPercent: 30}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if q := ComputeQuote(project, 1000, Term12Mo, now); q.ROIPercent != 30 {
		t.Fatalf("12mo roi = %v, want 30", q.ROIPercent)
	}
	if q := ComputeQuote(project, 1000, Term12Mo, now); !q.MaturityDate.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("12mo maturity = %v", q.MaturityDate)
	}
}

func TestComputeQuote_FallbackRates(t *testing.T) {
	project := &models.Project{}
	now := time.Now()

	if q := ComputeQuote(project, 1000, Term4Mo, now); q.ROIPercent != 12 {
		t.Fatalf("4mo fallback roi = %v, want 12", q.ROIPercent)
	}
	if q := ComputeQuote(project, 1000, Term12Mo, now); q.ROIPercent != 35 {
		t.Fatalf("12mo fallback roi = %v, want 35", q.ROIPercent)
	}
}

func TestComputeQuote_MonthEndNormalizes(t *testing.T) {
	project := &models.Project{ROI4moPercent: 10}
	// Oct 31 + 4 months lands on the nonexistent Feb 31 and normalizes
	// forward into March.
	now := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	q := ComputeQuote(project, 1000, Term4Mo, now)
	if want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC); !q.MaturityDate.Equal(want) {
		t.Fatalf("maturity = %v, want %v", q.MaturityDate, want)
	}
}

func TestComputeQuote_PayoutRounded(t *testing.T) {
	project := &models.Project{ROI4moPercent: 12.5}
	q := ComputeQuote(project, 333.33, Term4Mo, time.Now())
	// 333.33 * 1.125 = 374.99625
	if q.ExpectedPayout != 375.0 {
		t.Fatalf("payout = %v, want 375", q.ExpectedPayout)
	}
}
