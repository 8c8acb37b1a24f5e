package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

var lexiconTables = map[string]func() lexicon.Table{
	"technical":         lexicon.TechnicalSkills,
	"soft":              lexicon.SoftSkills,
	"industry":          lexicon.IndustrySkills,
	"industry-keywords": lexicon.IndustryKeywords,
	"industry-focus":    lexicon.IndustryFocus,
}

var lexiconCmd = &cobra.Command{
	Use:   "lexicon [table [category]]",
	Short: "Show the skill tables resumes are matched against",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLexicon(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

func lexiconTableNames() []string {
	names := make([]string, 0, len(lexiconTables))
	for name := range lexiconTables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// printLexicon lists tables, the categories of one table, or the terms of one category.
func printLexicon(w io.Writer, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(w, "lexicon %s\n", lexicon.Version)
		for _, name := range lexiconTableNames() {
			table := lexiconTables[name]()
			fmt.Fprintf(w, "  %-18s %2d categories, %3d terms\n", name, len(table), len(table.Distinct()))
		}
		return nil
	}

	load, ok := lexiconTables[args[0]]
	if !ok {
		return fmt.Errorf("unknown lexicon table %q (available: %s)", args[0], strings.Join(lexiconTableNames(), ", "))
	}
	table := load()

	if len(args) == 1 {
		for _, c := range table {
			fmt.Fprintf(w, "%-20s %3d terms\n", c.Name, len(c.Terms))
		}
		return nil
	}

	terms, ok := table.Category(args[1])
	if !ok {
		return fmt.Errorf("table %q has no category %q", args[0], args[1])
	}
	fmt.Fprintln(w, strings.Join(terms, ", "))
	return nil
}
