package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Inspect or reset the stored search criteria",
}

var searchShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored search criteria",
	RunE:  runSearchShow,
}

var searchResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset filters, sort and pagination to defaults",
	RunE:  runSearchReset,
}

func init() {
	searchCmd.AddCommand(searchShowCmd)
	searchCmd.AddCommand(searchResetCmd)
}

func runSearchShow(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	c := app.Store.Criteria()

	if len(c.Filters) == 0 {
		fmt.Println("Filters: none")
	} else {
		fmt.Println("Filters:")
		for key, val := range c.Filters {
			if val.Range != nil {
				lo, hi := "*", "*"
				if val.Range.Min != nil {
					lo = fmt.Sprintf("%g", *val.Range.Min)
				}
				if val.Range.Max != nil {
					hi = fmt.Sprintf("%g", *val.Range.Max)
				}
				fmt.Printf("  %s: %s..%s\n", key, lo, hi)
			} else {
				fmt.Printf("  %s: %q\n", key, val.Text)
			}
		}
	}

	if c.Sort != nil {
		fmt.Printf("Sort: %s %s\n", c.Sort.Field, c.Sort.Direction)
	} else {
		fmt.Println("Sort: none")
	}
	fmt.Printf("Page: %d, limit %d\n", c.Pagination.Page, c.Pagination.Limit)
	return nil
}

func runSearchReset(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Store.ResetSearch()
	fmt.Println("✅ Search criteria reset to defaults.")
	return nil
}
