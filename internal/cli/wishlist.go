package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage your wishlist",
}

var wishlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the wishlist",
	RunE:  runWishlistList,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistAdd,
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistRemove,
}

func init() {
	wishlistCmd.AddCommand(wishlistListCmd)
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)

	rootCmd.AddCommand(wishlistCmd)
}

func runWishlistList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	wishlist, err := a.catalog.RefreshWishlist(context.Background())
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"wishlist": wishlist,
			"count":    len(wishlist),
		})
	}

	if len(wishlist) == 0 {
		fmt.Println("Your wishlist is empty")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "TITLE", "CATEGORY", "PRICE")
	for _, p := range wishlist {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.ID, truncate(p.Title, 40), truncate(p.Category.Name, 20), formatPrice(p))
	}
	return w.Flush()
}

func runWishlistAdd(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if err := a.catalog.AddToWishlist(context.Background(), args[0]); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "added", "product_id": args[0]})
	}
	fmt.Printf("%s Added to wishlist: %s\n", colorGreen("✓"), args[0])
	return nil
}

func runWishlistRemove(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	if err := a.catalog.RemoveFromWishlist(context.Background(), args[0]); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "removed", "product_id": args[0]})
	}
	fmt.Printf("%s Removed from wishlist: %s\n", colorGreen("✓"), args[0])
	return nil
}
