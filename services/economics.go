package services

import (
	"time"

	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/utils"
)

const (
	Term4Mo  = "4mo"
	Term12Mo = "12mo"
)

// Fallback rates applied when a project omits the rate for the selected
// term. These exist to keep demo and seed data usable; real projects are
// expected to carry both rates.
const (
	defaultROI4moPercent  = 12
	defaultROI12moPercent = 35
)

// ValidTerm reports whether term is a supported investment duration. No
// default term is ever assumed.
func ValidTerm(term string) bool {
	return term == Term4Mo || term == Term12Mo
}

// Quote is the locked-in economics of an investment at creation time.
type Quote struct {
	ROIPercent     float64
	ExpectedPayout float64
	StartDate      time.Time
	MaturityDate   time.Time
}

// ComputeQuote derives ROI, payout and maturity from the project's terms.
// Pure given its inputs and now; maturity uses calendar month arithmetic
// (AddDate), so end-of-month dates normalize the way the platform's date
// handling always has.
func ComputeQuote(project *models.Project, amount float64, term string, now time.Time) Quote {
	roi := project.ROI4moPercent
	months := 4
	if term == Term12Mo {
		roi = project.ROI12moPercent
		months = 12
	}
	if roi == 0 {
		if term == Term12Mo {
			roi = defaultROI12moPercent
		} else {
			roi = defaultROI4moPercent
		}
	}

	return Quote{
		ROIPercent:     roi,
		ExpectedPayout: utils.RoundFloat(amount+amount*roi/100, 2),
		StartDate:      now,
		MaturityDate:   now.AddDate(0, months, 0),
	}
}
