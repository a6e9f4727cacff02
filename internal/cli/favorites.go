package cli

import (
	"context"
	"fmt"

	"github.com/lotworks/lotview/internal/catalog"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"favs"},
	Short:   "Manage favorited vehicles",
	Long: `List or change the favorites set. The bare command lists favorites
through the same filter/sort/pagination criteria as the main listing.`,
	RunE: runFavoritesList,
}

var favAddCmd = &cobra.Command{
	Use:   "add <vehicle-id>",
	Short: "Add a vehicle to favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoriteAdd,
}

var favRemoveCmd = &cobra.Command{
	Use:   "remove <vehicle-id>",
	Short: "Remove a vehicle from favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoriteRemove,
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <vehicle-id>",
	Short: "Toggle favorite status for a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoriteToggle,
}

func init() {
	favoritesCmd.AddCommand(favAddCmd)
	favoritesCmd.AddCommand(favRemoveCmd)
	favoritesCmd.AddCommand(favToggleCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(app.Store.Favorites()) == 0 {
		fmt.Println("No favorites yet. Add one with: lotview favorites add <vehicle-id>")
		return nil
	}

	if err := catalog.Load(context.Background(), app.Client, app.Store); err != nil {
		return fmt.Errorf("failed to load catalog (retry with the same command): %w", err)
	}

	result := app.Store.DisplayedFavorites()
	if result.Total == 0 {
		fmt.Println("No favorite vehicles match the current criteria.")
		return nil
	}
	printVehiclePage(app.Store, result)
	return nil
}

func runFavoriteAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Store.AddFavorite(args[0])
	fmt.Printf("⭐ Favorited %s\n", args[0])
	return nil
}

func runFavoriteRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Store.RemoveFavorite(args[0])
	fmt.Printf("Removed %s from favorites\n", args[0])
	return nil
}

func runFavoriteToggle(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Store.ToggleFavorite(args[0])
	if app.Store.IsFavorite(args[0]) {
		fmt.Printf("⭐ Favorited %s\n", args[0])
	} else {
		fmt.Printf("Removed %s from favorites\n", args[0])
	}
	return nil
}
