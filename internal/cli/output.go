package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/store"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

func colorGreen(s string) string  { return "\x1b[32m" + s + "\x1b[0m" }
func colorYellow(s string) string { return "\x1b[33m" + s + "\x1b[0m" }
func colorRed(s string) string    { return "\x1b[31m" + s + "\x1b[0m" }

// newTable returns a tabwriter for aligned table output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printTableHeader(w *tabwriter.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError renders an error as a one-line notification. Every failure is
// scoped to the triggering command; there is nothing to crash or restart.
func printError(err error) {
	switch {
	case errors.Is(err, store.ErrNotAuthenticated):
		fmt.Fprintf(os.Stderr, "%s Please login first: shopctl auth login\n", colorYellow("!"))
	case errors.Is(err, token.ErrExpired):
		fmt.Fprintf(os.Stderr, "%s Session expired, please login again\n", colorYellow("!"))
	case errors.Is(err, token.ErrInvalidToken):
		fmt.Fprintf(os.Stderr, "%s Invalid session token, please login again\n", colorRed("✗"))
	case errors.Is(err, store.ErrMinQuantity):
		fmt.Fprintf(os.Stderr, "%s Quantity cannot go below 1; use 'cart remove' instead\n", colorYellow("!"))
	case errors.Is(err, store.ErrPasswordMismatch):
		fmt.Fprintf(os.Stderr, "%s Passwords do not match\n", colorRed("✗"))
	default:
		if verr, ok := store.IsValidationError(err); ok {
			for _, reason := range verr.Reasons {
				fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), reason)
			}
			return
		}
		if apiErr, ok := commerce.IsAPIError(err); ok {
			fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), apiErr.Message)
			return
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", colorRed("✗"), err)
	}
}

// truncate shortens s to at most n runes for table cells.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// formatPrice renders a price with the discount applied when present.
func formatPrice(p commerce.Product) string {
	if p.PriceAfterDiscount > 0 && p.PriceAfterDiscount < p.Price {
		return fmt.Sprintf("%.0f EGP (was %.0f)", p.PriceAfterDiscount, p.Price)
	}
	return fmt.Sprintf("%.0f EGP", p.Price)
}
