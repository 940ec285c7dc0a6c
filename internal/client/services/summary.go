package services

import "github.com/dmitrijs2005/facultyip/internal/client/models"

// Summary aggregates a patent portfolio for the overview screen.
type Summary struct {
	Total          int
	Commercialized int
	Revenue        float64
}

func PatentSummary(patents []models.Patent) Summary {
	var s Summary
	s.Total = len(patents)
	for _, p := range patents {
		if !p.Commercialized {
			continue
		}
		s.Commercialized++
		if p.CommercializationAmount != nil {
			s.Revenue += *p.CommercializationAmount
		}
	}
	return s
}

// RecentPatents returns the first n patents in backend order, which is
// newest first.
func RecentPatents(patents []models.Patent, n int) []models.Patent {
	if n < 0 {
		n = 0
	}
	if len(patents) < n {
		n = len(patents)
	}
	return patents[:n]
}
