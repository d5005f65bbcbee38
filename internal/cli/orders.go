package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show past orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your order history",
	RunE:  runOrdersList,
}

func init() {
	ordersCmd.AddCommand(ordersListCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	orders, err := a.cart.OrderHistory(context.Background())
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"orders": orders,
			"count":  len(orders),
		})
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "DATE", "TOTAL", "PAYMENT", "PAID", "DELIVERED")
	for _, o := range orders {
		paid := colorRed("no")
		if o.IsPaid {
			paid = colorGreen("yes")
		}
		delivered := "no"
		if o.IsDelivered {
			delivered = colorGreen("yes")
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f EGP\t%s\t%s\t%s\n",
			o.ID, truncate(o.CreatedAt, 10), o.TotalOrderPrice, o.PaymentMethodType, paid, delivered)
	}
	return w.Flush()
}
