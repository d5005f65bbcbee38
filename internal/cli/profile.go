package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and saved addresses",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	user, err := a.session.LoadProfile(context.Background())
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(user)
	}

	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Email: %s\n", user.Email)
	if user.Phone != "" {
		fmt.Printf("Phone: %s\n", user.Phone)
	}

	if len(user.Addresses) > 0 {
		fmt.Printf("\nSaved addresses:\n")
		w := newTable()
		printTableHeader(w, "NAME", "CITY", "DETAILS")
		for _, addr := range user.Addresses {
			fmt.Fprintf(w, "%s\t%s\t%s\n", addr.Name, addr.City, truncate(addr.Details, 40))
		}
		return w.Flush()
	}
	return nil
}
