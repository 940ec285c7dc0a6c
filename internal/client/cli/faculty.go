package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/client/services"
)

// Overview shows portfolio totals, citation metrics and the latest patents.
func (a *App) Overview(ctx context.Context) error {
	patents, err := a.faculty.Patents(ctx)
	if err != nil {
		a.notify.Failure(ctx, "Failed to load patents", err)
		return err
	}

	s := services.PatentSummary(patents)
	fmt.Fprintf(a.out, "Patents:         %d\n", s.Total)
	fmt.Fprintf(a.out, "Commercialized:  %d\n", s.Commercialized)
	fmt.Fprintf(a.out, "Revenue:         $%.2f\n", s.Revenue)

	total, hIndex, i10 := "0", "0", "0"
	if a.scholar != nil && a.scholar.Citations != nil {
		total = orZero(a.scholar.Citations.Total)
		hIndex = orZero(a.scholar.Citations.HIndex)
		i10 = orZero(a.scholar.Citations.I10Index)
	}
	fmt.Fprintf(a.out, "Citations:       %s (h-index %s, i10-index %s)\n", total, hIndex, i10)

	recent := services.RecentPatents(patents, 3)
	if len(recent) > 0 {
		fmt.Fprintln(a.out, "Recent patents:")
		for _, p := range recent {
			fmt.Fprintf(a.out, "  - %s (%s)\n", p.Title, p.DateIssued)
		}
	}
	return nil
}

func (a *App) Patents(ctx context.Context) error {
	patents, err := a.faculty.Patents(ctx)
	if err != nil {
		a.notify.Failure(ctx, "Failed to load patents", err)
		return err
	}
	printPatents(a.out, patents)
	return nil
}

// AddPatent fills the patent form interactively and submits it. An empty
// answer keeps what the form already holds; the form is cleared only after
// a successful submission.
func (a *App) AddPatent(ctx context.Context) error {
	return a.busy.do(func() error {
		f := &a.form
		var err error

		if f.Title, err = promptDefault(a.reader, a.out, "Title", f.Title); err != nil {
			return err
		}
		if f.DateIssued, err = promptDefault(a.reader, a.out, "Date issued (YYYY-MM-DD)", f.DateIssued); err != nil {
			return err
		}
		if f.PatentNumber, err = promptDefault(a.reader, a.out, "Patent number (optional)", f.PatentNumber); err != nil {
			return err
		}
		if f.Commercialized, err = promptYesNo(a.reader, a.out, "Commercialized?", f.Commercialized); err != nil {
			return err
		}
		if f.Commercialized {
			if f.Amount, err = promptDefault(a.reader, a.out, "Commercialization amount", f.Amount); err != nil {
				return err
			}
		}

		p, err := a.faculty.AddPatent(ctx, *f)
		if err != nil {
			a.notify.Failure(ctx, "Failed to add patent", err)
			return err
		}

		f.Reset()
		a.notify.Success("Patent added successfully!")
		a.log.Info(ctx, "patent created", "patent_id", p.ID)
		return nil
	})
}

// Scholar links a Google Scholar profile and shows the fetched metrics.
func (a *App) Scholar(ctx context.Context) error {
	return a.busy.do(func() error {
		current := ""
		if id := a.session.Current(); id != nil {
			current = id.GoogleScholarURL
		}
		url, err := promptDefault(a.reader, a.out, "Google Scholar profile URL", current)
		if err != nil {
			return err
		}

		profile, err := a.faculty.UpdateScholar(ctx, url)
		if err != nil {
			a.notify.Failure(ctx, "Failed to update Google Scholar profile", err)
			return err
		}

		a.scholar = profile
		a.notify.Success("Google Scholar profile updated successfully!")
		printScholar(a.out, profile)
		return nil
	})
}

func printPatents(w io.Writer, patents []models.Patent) {
	if len(patents) == 0 {
		fmt.Fprintln(w, "No patents yet.")
		return
	}
	for _, p := range patents {
		line := fmt.Sprintf("%-10s %s  %s", p.ID, p.DateIssued, p.Title)
		if p.PatentNumber != nil && *p.PatentNumber != "" {
			line += fmt.Sprintf(" [%s]", *p.PatentNumber)
		}
		if p.Commercialized {
			line += "  commercialized"
			if p.CommercializationAmount != nil {
				line += fmt.Sprintf(", revenue $%.2f", *p.CommercializationAmount)
			}
		}
		fmt.Fprintln(w, line)
	}
}

func printScholar(w io.Writer, p *models.ScholarProfile) {
	if p == nil {
		return
	}
	if p.Error != "" {
		fmt.Fprintf(w, "Scholar: %s\n", p.Error)
		return
	}
	fmt.Fprintf(w, "Scholar:     %s\n", p.Name)
	if p.Affiliation != "" {
		fmt.Fprintf(w, "Affiliation: %s\n", p.Affiliation)
	}
	if c := p.Citations; c != nil {
		fmt.Fprintf(w, "Citations:   %s  h-index %s  i10-index %s\n", orZero(c.Total), orZero(c.HIndex), orZero(c.I10Index))
	}
	for _, pub := range p.Publications {
		fmt.Fprintf(w, "  - %s\n", strings.TrimSpace(pub.Title))
	}
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
