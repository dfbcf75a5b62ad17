package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/va6996/tourplanner/log"
	"github.com/va6996/tourplanner/orm"
	"github.com/va6996/tourplanner/render"
)

func (r *runner) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved tour plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			db, err := r.app.DB(cmd.Context())
			if err != nil {
				return err
			}
			record, err := orm.GetTourPlan(db, id)
			if err != nil {
				return fmt.Errorf("plan #%d: %w", id, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Summary(record.ToDomain(), r.app.Locale))
			return nil
		},
	}
}

func (r *runner) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved tour plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := r.app.DB(cmd.Context())
			if err != nil {
				return err
			}
			records, err := orm.ListTourPlans(db)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved tour plans.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTART\tNIGHTS\tDAYS\tTITLE")
			for _, rec := range records {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", rec.ID, rec.StartDate.UTC().Format("2006-01-02"), rec.Nights, rec.Days, rec.Title)
			}
			return w.Flush()
		},
	}
}

func (r *runner) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved tour plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			db, err := r.app.DB(cmd.Context())
			if err != nil {
				return err
			}
			if err := orm.DeleteTourPlan(db, id); err != nil {
				return fmt.Errorf("plan #%d: %w", id, err)
			}
			log.Infof(cmd.Context(), "Deleted tour plan %d", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
			return nil
		},
	}
}
