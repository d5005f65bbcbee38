package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ahmed-As3ad/e-commerce/internal/store"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Manage saved shipping addresses",
}

var addressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List selectable addresses",
	RunE:  runAddressList,
}

var addressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new shipping address",
	Long: `Save a new shipping address. The form is validated locally first;
invalid input is rejected without any network call.

Examples:
  shopctl address add --name Home --details "12 Tahrir St, apartment 4" \
      --phone 01012345678 --city Cairo`,
	RunE: runAddressAdd,
}

var addressDeleteCmd = &cobra.Command{
	Use:   "delete <address-id>",
	Short: "Delete a saved address",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddressDelete,
}

var addressCitiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the allowed cities",
	RunE:  runAddressCities,
}

func init() {
	addressAddCmd.Flags().String("name", "", "label for the address (e.g. Home)")
	addressAddCmd.Flags().String("details", "", "street address details")
	addressAddCmd.Flags().String("phone", "", "Egyptian mobile number")
	addressAddCmd.Flags().String("city", "", "city from the allowed list")
	_ = addressAddCmd.MarkFlagRequired("name")
	_ = addressAddCmd.MarkFlagRequired("details")
	_ = addressAddCmd.MarkFlagRequired("phone")
	_ = addressAddCmd.MarkFlagRequired("city")

	addressDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	addressCmd.AddCommand(addressListCmd)
	addressCmd.AddCommand(addressAddCmd)
	addressCmd.AddCommand(addressDeleteCmd)
	addressCmd.AddCommand(addressCitiesCmd)

	rootCmd.AddCommand(addressCmd)
}

func runAddressList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if _, err := a.addresses.Refresh(context.Background()); err != nil {
		printError(err)
		return err
	}

	selectable := a.addresses.Selectable()
	hidden := a.addresses.HiddenCount()

	if jsonOut {
		return printJSON(map[string]any{
			"addresses": selectable,
			"hidden":    hidden,
		})
	}

	if len(selectable) == 0 {
		fmt.Println("No addresses saved")
	} else {
		w := newTable()
		printTableHeader(w, "ID", "NAME", "CITY", "PHONE", "DETAILS")
		for _, addr := range selectable {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				addr.ID, addr.Name, addr.City, addr.Phone, truncate(addr.Details, 40))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if hidden > 0 {
		fmt.Printf("%s %d incomplete address(es) hidden\n", colorYellow("!"), hidden)
	}
	return nil
}

func runAddressAdd(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	details, _ := cmd.Flags().GetString("details")
	phone, _ := cmd.Flags().GetString("phone")
	city, _ := cmd.Flags().GetString("city")

	form := store.AddressForm{Name: name, Details: details, Phone: phone, City: city}
	if err := a.addresses.Add(context.Background(), form); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "added", "name": name})
	}
	fmt.Printf("%s Address %q saved\n", colorGreen("✓"), name)
	return nil
}

func runAddressDelete(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		fmt.Printf("%s Delete address %s? [y/N]: ", colorYellow("!"), args[0])
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := a.addresses.Delete(context.Background(), args[0]); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "deleted", "address_id": args[0]})
	}
	fmt.Printf("%s Address deleted: %s\n", colorGreen("✓"), args[0])
	return nil
}

func runAddressCities(cmd *cobra.Command, args []string) error {
	if jsonOut {
		return printJSON(store.AllowedCities)
	}
	for _, city := range store.AllowedCities {
		fmt.Println(city)
	}
	return nil
}
