package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mamahiam-storefront/internal/checkout"
)

var checkoutForm checkout.Form

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order with the current cart",
	RunE:  runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutForm.Name, "name", "", "Customer name (required)")
	checkoutCmd.Flags().StringVar(&checkoutForm.Phone, "phone", "", "Phone number, 10 digits (required)")
	checkoutCmd.Flags().StringVar(&checkoutForm.Address, "address", "", "Delivery address (required)")
	checkoutCmd.Flags().StringVar(&checkoutForm.Notes, "notes", "", "Extra notes")
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	engine, err := openCart(cmd.Context(), logger)
	if err != nil {
		return err
	}

	ctl := checkout.New(engine, newClient(logger), logger)
	if ctl.ShouldRedirect() {
		return errors.New("cart is empty, add something first")
	}

	conf, err := ctl.Submit(cmd.Context(), checkoutForm)
	if err != nil {
		var fieldErrs checkout.FieldErrors
		if errors.As(err, &fieldErrs) {
			for field, msg := range fieldErrs {
				color.Red("%s: %s", field, msg)
			}
			return errors.New("please fix the fields above and try again")
		}
		return err
	}

	color.Green("order placed!")
	fmt.Printf("  number:   %s\n", conf.Number)
	fmt.Printf("  date:     %s\n", conf.CreatedAt)
	fmt.Printf("  customer: %s (%s)\n", conf.CustomerName, conf.CustomerPhone)
	fmt.Printf("  address:  %s\n", conf.CustomerAddress)
	for _, line := range conf.Items {
		fmt.Printf("  %-40s %3d x %8.2f = %8.2f\n", line.ProductName, line.Qty, line.UnitPrice, line.LineTotal)
	}
	bold := color.New(color.Bold)
	bold.Printf("  total: %.2f\n", conf.TotalPrice)
	return nil
}
