package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"landingkit/internal/database"
	"landingkit/internal/models"
	"landingkit/internal/store"
)

func leadsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if !cfg.HasDatabase() {
		return errors.New("leads needs POSTGRES_HOST")
	}

	db, err := database.Connect(c.Context, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	leads := store.NewLeadStore(db)
	total, err := leads.Count(c.Context)
	if err != nil {
		return err
	}
	recent, err := leads.Recent(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d leads total, showing %d most recent\n\n", total, len(recent))
	return printLeads(c, recent)
}

func printLeads(c *cli.Context, leads []models.Lead) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tCOMPANY\tSOURCE")
	for _, l := range leads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			l.CreatedAt.Local().Format(time.DateTime),
			l.Value(models.LeadName),
			l.Value(models.LeadEmail),
			l.Value(models.LeadCompany),
			l.Source,
		)
	}
	return tw.Flush()
}
