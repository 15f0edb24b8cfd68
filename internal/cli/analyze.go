package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lokistudio/detell/internal/humanize"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input-file>",
	Short: "Detect AI tells without rewriting",
	Long: "Scans a file for AI telltale signs (flagged word choices, em dashes,\n" +
		"hedging phrases) and prints the findings. The file is never modified.",
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	tells := humanize.DetectTells(string(data))
	if len(tells) == 0 {
		fmt.Println("No obvious AI tells detected")
		return nil
	}

	fmt.Printf("Detected %d AI telltale signs:\n", len(tells))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Evidence", "Count"})
	for _, tell := range tells {
		table.Append([]string{tell.Category, tell.Match, strconv.Itoa(tell.Count)})
	}
	table.Render()

	return nil
}
