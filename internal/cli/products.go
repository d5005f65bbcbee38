package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
	Long: `Catalog browsing commands. The catalog is public; no login required.

Examples:
  shopctl products list
  shopctl products get 6428ebc6dc1175abc65ca0b9
  shopctl products related "Women's Fashion"`,
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the full catalog",
	RunE:  runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product's detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsGet,
}

var productsRelatedCmd = &cobra.Command{
	Use:   "related <category-name>",
	Short: "List up to 8 products in the same category",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsRelated,
}

func init() {
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsRelatedCmd)

	rootCmd.AddCommand(productsCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	products, err := a.catalog.ListAll(context.Background())
	if err != nil {
		printError(err)
		return err
	}

	// Wishlist hearts are best-effort decoration; no session means none.
	if a.gate.Allow() {
		_, _ = a.catalog.RefreshWishlist(context.Background())
	}

	if jsonOut {
		return printJSON(map[string]any{
			"products": products,
			"count":    len(products),
		})
	}

	if len(products) == 0 {
		fmt.Println("No products found")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "TITLE", "CATEGORY", "PRICE", "RATING", "WISH")
	for _, p := range products {
		wish := ""
		if a.catalog.InWishlist(p.ID) {
			wish = "♥"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f (%d)\t%s\n",
			p.ID,
			truncate(p.Title, 40),
			truncate(p.Category.Name, 20),
			formatPrice(p),
			p.RatingsAverage,
			p.RatingsQuantity,
			wish,
		)
	}
	return w.Flush()
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	product, err := a.catalog.GetByID(context.Background(), args[0])
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(product)
	}

	fmt.Printf("Title:    %s\n", product.Title)
	fmt.Printf("ID:       %s\n", product.ID)
	fmt.Printf("Category: %s\n", product.Category.Name)
	if product.Brand != nil {
		fmt.Printf("Brand:    %s\n", product.Brand.Name)
	}
	fmt.Printf("Price:    %s\n", formatPrice(*product))
	fmt.Printf("Rating:   %.1f (%d ratings)\n", product.RatingsAverage, product.RatingsQuantity)
	if product.Description != "" {
		fmt.Printf("\n%s\n", product.Description)
	}
	return nil
}

func runProductsRelated(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	related, err := a.catalog.ListRelated(context.Background(), args[0])
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"products": related,
			"count":    len(related),
		})
	}

	if len(related) == 0 {
		fmt.Printf("No products in category %q\n", args[0])
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "TITLE", "PRICE", "RATING")
	for _, p := range related {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n",
			p.ID, truncate(p.Title, 40), formatPrice(p), p.RatingsAverage)
	}
	return w.Flush()
}
