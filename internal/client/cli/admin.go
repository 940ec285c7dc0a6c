package cli

import (
	"context"
	"fmt"
)

// FacultyList prints the faculty directory with citation metrics.
func (a *App) FacultyList(ctx context.Context) error {
	faculty, err := a.admin.Faculty(ctx)
	if err != nil {
		a.notify.Failure(ctx, "Failed to load faculty data", err)
		return err
	}

	if len(faculty) == 0 {
		fmt.Fprintln(a.out, "No faculty registered.")
		return nil
	}
	for _, m := range faculty {
		line := fmt.Sprintf("%-10s %s <%s>", m.ID, m.DisplayName(), m.Email)
		if sd := m.ScholarData; sd != nil {
			if sd.Affiliation != "" {
				line += " - " + sd.Affiliation
			}
			if c := sd.Citations; c != nil {
				line += fmt.Sprintf("  citations %s, h-index %s, i10 %s", orZero(c.Total), orZero(c.HIndex), orZero(c.I10Index))
			}
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// ShowFaculty prints one faculty member's profile and patents.
func (a *App) ShowFaculty(ctx context.Context, id string) error {
	member, err := a.admin.FacultyMember(ctx, id)
	if err != nil {
		a.notify.Failure(ctx, "Failed to load faculty data", err)
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", member.DisplayName(), member.Email)
	printScholar(a.out, member.ScholarData)

	patents, err := a.admin.FacultyPatents(ctx, id)
	if err != nil {
		a.notify.Failure(ctx, "Failed to load faculty patents", err)
		return err
	}
	printPatents(a.out, patents)
	return nil
}

// Export saves the faculty member's export and reports where it went.
func (a *App) Export(ctx context.Context, id string) error {
	return a.busy.do(func() error {
		loc, err := a.admin.Export(ctx, id)
		if err != nil {
			a.notify.Failure(ctx, "Failed to export faculty data", err)
			return err
		}
		a.notify.Success(fmt.Sprintf("Faculty data exported successfully: %s", loc))
		return nil
	})
}
