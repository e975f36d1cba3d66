package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/DanRulev/uniprep.git/internal/client"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/internal/repository"
	"github.com/DanRulev/uniprep.git/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var (
		userID    int64
		subjectID string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show a user's study plans",
		Long: `Without --subject lists every plan of the user, newest first.
With --subject prints the newest plan for that subject with its topics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, conn, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer conn.Close()

			services := service.InitServices(client.InitClients(cfg.AI), repository.NewRepository(conn), cfg, logger)

			if subjectID != "" {
				plan, err := services.PlanBySubject(cmd.Context(), userID, subjectID)
				if err != nil {
					return err
				}
				return printPlan(cmd.OutOrStdout(), plan)
			}

			plans, err := services.Plans(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printPlans(cmd.OutOrStdout(), plans)
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func printPlans(out io.Writer, plans []models.StudyPlan) error {
	if len(plans) == 0 {
		fmt.Fprintln(out, "📭 No study plans yet")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSubject\tCreated")
	fmt.Fprintln(w, "--\t-------\t-------")
	for _, p := range plans {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.SubjectID, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func printPlan(out io.Writer, plan models.StudyPlan) error {
	fmt.Fprintf(out, "📚 %s\n\n", plan.Message)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTopic\tStatus\tID")
	fmt.Fprintln(w, "-\t-----\t------\t--")
	for _, t := range plan.Topics {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.Position, t.Name, t.Status, t.ID)
	}
	return w.Flush()
}
