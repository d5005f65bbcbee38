package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart and start checkout",
	Long: `Cart commands. Every mutation replaces the local snapshot with the
server's response; totals always come from the server.

Examples:
  shopctl cart show
  shopctl cart add 6428ebc6dc1175abc65ca0b9
  shopctl cart set-quantity 6428ebc6dc1175abc65ca0b9 3
  shopctl cart checkout --address-id 64c9...`,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartSetQuantityCmd = &cobra.Command{
	Use:   "set-quantity <product-id> <count>",
	Short: "Set a line's quantity (minimum 1)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSetQuantity,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the whole cart",
	RunE:  runCartClear,
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Start a hosted checkout session",
	Long: `Post the chosen shipping address and print the hosted payment URL.
Payment happens entirely on the external processor's page; shopctl does
not handle card data or payment state.`,
	RunE: runCartCheckout,
}

func init() {
	cartClearCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	cartCheckoutCmd.Flags().String("address-id", "", "saved address to ship to")
	_ = cartCheckoutCmd.MarkFlagRequired("address-id")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartSetQuantityCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	cartCmd.AddCommand(cartCheckoutCmd)

	rootCmd.AddCommand(cartCmd)
}

func printSnapshot(snap commerce.CartSnapshot) error {
	if jsonOut {
		return printJSON(snap)
	}

	if snap.ItemCount == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "TITLE", "UNIT PRICE", "QTY", "LINE TOTAL")
	for _, item := range snap.Items {
		fmt.Fprintf(w, "%s\t%s\t%.0f EGP\t%d\t%.0f EGP\n",
			item.Product.ID,
			truncate(item.Product.Title, 40),
			item.Price,
			item.Quantity,
			item.Price*float64(item.Quantity),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nItems: %d    Total: %.0f EGP\n", snap.ItemCount, snap.TotalPrice)
	return nil
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	snap, err := a.cart.Fetch(context.Background())
	if err != nil {
		printError(err)
		return err
	}
	return printSnapshot(snap)
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	snap, err := a.cart.AddItem(context.Background(), args[0])
	if err != nil {
		printError(err)
		return err
	}

	if !jsonOut {
		fmt.Printf("%s Added to cart\n\n", colorGreen("✓"))
	}
	return printSnapshot(snap)
}

func runCartSetQuantity(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	var count int
	if _, err := fmt.Sscanf(args[1], "%d", &count); err != nil {
		return fmt.Errorf("count must be a number, got %q", args[1])
	}

	snap, err := a.cart.SetQuantity(context.Background(), args[0], count)
	if err != nil {
		printError(err)
		return err
	}
	return printSnapshot(snap)
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	snap, err := a.cart.RemoveItem(context.Background(), args[0])
	if err != nil {
		printError(err)
		return err
	}

	if !jsonOut {
		fmt.Printf("%s Removed from cart\n\n", colorGreen("✓"))
	}
	return printSnapshot(snap)
}

func runCartClear(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		fmt.Printf("%s Empty the whole cart? [y/N]: ", colorYellow("!"))
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := a.cart.Clear(context.Background()); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "cleared"})
	}
	fmt.Printf("%s Cart cleared\n", colorGreen("✓"))
	return nil
}

func runCartCheckout(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	addressID, _ := cmd.Flags().GetString("address-id")
	ctx := context.Background()

	// Current snapshot supplies the cart id for the session endpoint.
	snap, err := a.cart.Fetch(ctx)
	if err != nil {
		printError(err)
		return err
	}
	if snap.ItemCount == 0 {
		fmt.Println("Your cart is empty; nothing to check out")
		return nil
	}

	if _, err := a.addresses.Refresh(ctx); err != nil {
		printError(err)
		return err
	}

	var shipping *commerce.ShippingAddress
	for _, addr := range a.addresses.Selectable() {
		if addr.ID == addressID {
			shipping = &commerce.ShippingAddress{
				Details: addr.Details,
				Phone:   addr.Phone,
				City:    addr.City,
			}
			break
		}
	}
	if shipping == nil {
		return fmt.Errorf("address %s not found among selectable addresses", addressID)
	}

	redirectURL, err := a.cart.InitiateCheckout(ctx, snap.CartID, *shipping, a.cfg.ReturnURL)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "session_created", "url": redirectURL})
	}

	fmt.Printf("%s Checkout session created.\n\n", colorGreen("✓"))
	fmt.Printf("Complete your payment on the hosted page:\n\n  %s\n", redirectURL)
	return nil
}
