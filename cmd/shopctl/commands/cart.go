package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mamahiam-storefront/internal/cart"
)

var addQty int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local shopping cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart",
	RunE:  runCartList,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set a line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().IntVar(&addQty, "qty", 1, "Quantity to add")
	cartCmd.AddCommand(cartAddCmd, cartListCmd, cartRemoveCmd, cartSetCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	if addQty <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	logger := newLogger()
	product, err := newClient(logger).Product(cmd.Context(), id)
	if err != nil {
		return err
	}
	engine, err := openCart(cmd.Context(), logger)
	if err != nil {
		return err
	}
	engine.AddItemQuantity(*product, addQty)
	color.Green("added %d x %s", addQty, product.Name)
	return printCart(engine)
}

func runCartList(cmd *cobra.Command, _ []string) error {
	engine, err := openCart(cmd.Context(), newLogger())
	if err != nil {
		return err
	}
	return printCart(engine)
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	engine, err := openCart(cmd.Context(), newLogger())
	if err != nil {
		return err
	}
	engine.RemoveItem(id)
	return printCart(engine)
}

func runCartSet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}
	engine, err := openCart(cmd.Context(), newLogger())
	if err != nil {
		return err
	}
	engine.UpdateQuantity(id, qty)
	return printCart(engine)
}

func runCartClear(cmd *cobra.Command, _ []string) error {
	engine, err := openCart(cmd.Context(), newLogger())
	if err != nil {
		return err
	}
	engine.Clear()
	fmt.Println("cart cleared")
	return nil
}

func printCart(engine *cart.Engine) error {
	items := engine.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%6d  %-40s %3d x %8.2f = %8.2f\n",
			item.ID, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}
	bold := color.New(color.Bold)
	bold.Printf("%d items, total %.2f\n", engine.Count(), engine.Total())
	return nil
}
