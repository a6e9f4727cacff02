package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local session",
	Long: `Manage the local session. Login generates an opaque token with a
fixed lifetime; no server is involved.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create a session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Destroy the session",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session status",
	RunE:  runStatus,
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if app.Store.IsAuthenticated() {
		fmt.Printf("Already logged in, %s remaining.\n", formatRemaining(app.Store.TimeRemaining()))
		return nil
	}

	sess := app.Store.Login(app.Config.TTL())
	fmt.Printf("✅ Logged in as %s until %s\n", sess.User.Name, sess.ExpiresAt.Format("15:04:05"))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if app.Store.Session() == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	app.Store.Logout()
	fmt.Println("✅ Logged out.")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.Store.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	sess := app.Store.Session()
	fmt.Printf("Logged in as %s\n", sess.User.Name)
	fmt.Printf("Session expires in %s (at %s)\n",
		formatRemaining(app.Store.TimeRemaining()),
		sess.ExpiresAt.Format("15:04:05"))
	return nil
}
