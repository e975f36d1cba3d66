package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/DanRulev/uniprep.git/internal/importer"
	"github.com/DanRulev/uniprep.git/internal/repository"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import flashcards from an .xlsx or .csv file",
		Long: `Each row holds: subject, topic, question, correct answer, wrong answers...
Subjects, topics and flashcards are created on demand; known questions are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, conn, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer conn.Close()

			repos := repository.NewRepository(conn)
			report, err := importer.New(repos.CatalogR, logger).ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Processed\t%d\n", report.Processed)
			fmt.Fprintf(w, "Subjects created\t%d\n", report.SubjectsCreated)
			fmt.Fprintf(w, "Topics created\t%d\n", report.TopicsCreated)
			fmt.Fprintf(w, "Flashcards created\t%d\n", report.Created)
			fmt.Fprintf(w, "Skipped\t%d\n", report.Skipped)
			fmt.Fprintf(w, "Errors\t%d\n", len(report.Errors))
			if err := w.Flush(); err != nil {
				return err
			}

			for _, e := range report.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠️", e)
			}

			return nil
		},
	}
}
