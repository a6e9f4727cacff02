package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lotworks/lotview/internal/catalog"
	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/query"
	"github.com/lotworks/lotview/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List auction vehicles",
	Long: `List vehicles from the catalog with the active search criteria.
Criteria given as flags replace the stored ones and are persisted as
the new last search.

Examples:
  lotview list
  lotview list --make Ford --min-bid 1000 --max-bid 5000
  lotview list --sort startingBid_asc --limit 50 --page 2`,
	RunE: runList,
}

var (
	listMake       string
	listModel      string
	listColour     string
	listEquipment  string
	listYear       int
	listDoors      int
	listOwners     int
	listMinBid     float64
	listMaxBid     float64
	listMinMileage float64
	listMaxMileage float64
	listSort       string
	listPage       int
	listLimit      int
	listFavsOnly   bool
)

func init() {
	listCmd.Flags().StringVar(&listMake, "make", "", "Filter by make (substring)")
	listCmd.Flags().StringVar(&listModel, "model", "", "Filter by model (substring)")
	listCmd.Flags().StringVar(&listColour, "colour", "", "Filter by colour (substring)")
	listCmd.Flags().StringVar(&listEquipment, "equipment", "", "Filter by equipment item (substring)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "Filter by exact year")
	listCmd.Flags().IntVar(&listDoors, "doors", 0, "Filter by exact door count")
	listCmd.Flags().IntVar(&listOwners, "owners", 0, "Filter by exact owner count")
	listCmd.Flags().Float64Var(&listMinBid, "min-bid", 0, "Minimum starting bid")
	listCmd.Flags().Float64Var(&listMaxBid, "max-bid", 0, "Maximum starting bid")
	listCmd.Flags().Float64Var(&listMinMileage, "min-mileage", 0, "Minimum mileage")
	listCmd.Flags().Float64Var(&listMaxMileage, "max-mileage", 0, "Maximum mileage")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort as field_asc or field_desc (e.g. startingBid_desc)")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number (1-based)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size (10, 50 or 100)")
	listCmd.Flags().BoolVar(&listFavsOnly, "favorites", false, "Show only favorited vehicles")
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	applyListFlags(cmd, app.Store)

	if err := catalog.Load(context.Background(), app.Client, app.Store); err != nil {
		return fmt.Errorf("failed to load catalog (retry with the same command): %w", err)
	}

	var result query.Result
	if listFavsOnly {
		result = app.Store.DisplayedFavorites()
	} else {
		result = app.Store.Displayed()
	}

	printVehiclePage(app.Store, result)
	return nil
}

// applyListFlags pushes flag-provided criteria through the store so
// the page-reset invariant and the last-search snapshot apply exactly
// as they do in the TUI. Page is applied last: the other mutations
// reset it to 1.
func applyListFlags(cmd *cobra.Command, st *store.Store) {
	if listSort != "" {
		if s, ok := parseSortFlag(listSort); ok {
			st.SetSort(s)
		} else {
			fmt.Printf("Ignoring unknown sort %q\n", listSort)
		}
	}
	if cmd.Flags().Changed("limit") {
		st.SetLimit(listLimit)
	}

	flags := query.Filters{}
	if listMake != "" {
		flags[query.FilterMake] = query.Text(listMake)
	}
	if listModel != "" {
		flags[query.FilterModel] = query.Text(listModel)
	}
	if listColour != "" {
		flags[query.FilterColour] = query.Text(listColour)
	}
	if listEquipment != "" {
		flags[query.FilterEquipment] = query.Text(listEquipment)
	}
	if cmd.Flags().Changed("year") {
		flags[query.FilterYear] = query.Text(fmt.Sprintf("%d", listYear))
	}
	if cmd.Flags().Changed("doors") {
		flags[query.FilterDoors] = query.Text(fmt.Sprintf("%d", listDoors))
	}
	if cmd.Flags().Changed("owners") {
		flags[query.FilterOwners] = query.Text(fmt.Sprintf("%d", listOwners))
	}
	if r, ok := rangeValue(cmd, "min-bid", "max-bid", listMinBid, listMaxBid); ok {
		flags[query.FilterBid] = r
	}
	if r, ok := rangeValue(cmd, "min-mileage", "max-mileage", listMinMileage, listMaxMileage); ok {
		flags[query.FilterMileage] = r
	}

	// Flag criteria replace the stored filter set wholesale, so a
	// persisted filter from a prior run cannot silently narrow the
	// flagged search.
	if len(flags) > 0 {
		st.SetFilters(flags)
	}

	if cmd.Flags().Changed("page") {
		st.SetPage(listPage)
	}
}

func rangeValue(cmd *cobra.Command, minFlag, maxFlag string, min, max float64) (query.Value, bool) {
	var lo, hi *float64
	if cmd.Flags().Changed(minFlag) {
		lo = &min
	}
	if cmd.Flags().Changed(maxFlag) {
		hi = &max
	}
	if lo == nil && hi == nil {
		return query.Value{}, false
	}
	return query.Between(lo, hi), true
}

// parseSortFlag splits "field_direction" into a sort criteria
func parseSortFlag(s string) (*query.Sort, bool) {
	idx := strings.LastIndex(s, "_")
	if idx <= 0 {
		return nil, false
	}
	field, dir := s[:idx], s[idx+1:]
	if !query.IsSortable(field) || (dir != "asc" && dir != "desc") {
		return nil, false
	}
	return &query.Sort{Field: field, Direction: query.Direction(dir)}, true
}

func printVehiclePage(st *store.Store, result query.Result) {
	if result.Total == 0 {
		fmt.Println("No vehicles match the current criteria.")
		return
	}

	criteria := st.Criteria()
	page := criteria.Pagination.Page
	pages := query.TotalPages(result.Total, criteria.Pagination.Limit)

	fmt.Printf("\n🚗 Vehicles (page %d/%d, %d matching)\n", page, pages, result.Total)
	fmt.Println(strings.Repeat("─", 78))

	for _, v := range result.Page {
		printVehicle(st, v)
	}
	fmt.Println()
}

func printVehicle(st *store.Store, v model.Vehicle) {
	star := "  "
	if st.IsFavorite(v.ID) {
		star = "⭐"
	}

	auction := v.AuctionDateTime
	if t, ok := v.AuctionTime(); ok {
		auction = t.Format("Jan 2 15:04")
	}

	name := truncate(fmt.Sprintf("%s %s", v.Make, v.Model), 24)
	fmt.Printf("  %s %-8s  %-24s  %d  %7d mi  £%8.2f  %s\n",
		star, v.ID, name, v.Year, v.Mileage, v.StartingBid, auction)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
