package cli

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/va6996/tourplanner/log"
	"github.com/va6996/tourplanner/orm"
	"github.com/va6996/tourplanner/render"
	"github.com/va6996/tourplanner/tourplan"
)

// planFile is the YAML layout accepted by `tourplan build`.
type planFile struct {
	Title       string         `yaml:"title"`
	Nights      int            `yaml:"nights"`
	Days        int            `yaml:"days"`
	Start       string         `yaml:"start"`
	WhereToStay string         `yaml:"where_to_stay"`
	Plans       map[int]string `yaml:"plans"`
}

func (r *runner) buildCommand() *cobra.Command {
	var (
		file  string
		start string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and validate a tour plan from a YAML file",
		Long: `Read a plan file, resolve its start date, validate the result and print it.

The start date is either an ISO date (2024-06-01) or a JavaScript expression
where 'now' holds the current time in milliseconds.

PLAN FILE:
  title: Alps Trip
  nights: 3
  days: 4
  start: "2024-06-01"
  where_to_stay: Mountain Lodge
  plans:
    1: Arrival
    2: Hiking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var pf planFile
			if err := cleanenv.ReadConfig(file, &pf); err != nil {
				return fmt.Errorf("failed to read plan file: %w", err)
			}
			if start != "" {
				pf.Start = start
			}

			b := tourplan.NewBuilder().
				SetTitle(pf.Title).
				SetNights(pf.Nights).
				SetDays(pf.Days).
				SetWhereToStay(pf.WhereToStay)
			if pf.Start != "" {
				startDate, err := r.app.Resolver.Resolve(ctx, pf.Start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", pf.Start, err)
				}
				b.SetStartDate(startDate)
			}
			for day, plan := range pf.Plans {
				b.AddPlan(day, plan)
			}

			plan, err := tourplan.Build(ctx, b)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Summary(plan, r.app.Locale))

			if !save {
				return nil
			}
			db, err := r.app.DB(ctx)
			if err != nil {
				return err
			}
			record, err := orm.CreateTourPlan(db, plan)
			if err != nil {
				return err
			}
			log.Infof(ctx, "Saved tour plan %d (%s)", record.ID, record.Reference)
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as #%d (%s)\n", record.ID, record.Reference)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "plan file (YAML)")
	cmd.Flags().StringVar(&start, "start", "", "override the start date (ISO date or JS expression)")
	cmd.Flags().BoolVar(&save, "save", false, "store the plan after validation")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
