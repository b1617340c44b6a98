package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mamahiam-storefront/internal/domain"
	"mamahiam-storefront/internal/shopapi"
)

var (
	productsPage     int
	productsPerPage  int
	productsSearch   string
	productsCategory string
	productsFeatured bool
	productsNew      bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	RunE:  runProducts,
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "List discounted products",
	RunE:  runOffers,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE:  runCategories,
}

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List shop branches",
	RunE:  runBranches,
}

func init() {
	productsCmd.Flags().IntVar(&productsPage, "page", 1, "Page number")
	productsCmd.Flags().IntVar(&productsPerPage, "per-page", 12, "Products per page")
	productsCmd.Flags().StringVar(&productsSearch, "search", "", "Search term")
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Filter by category")
	productsCmd.Flags().BoolVar(&productsFeatured, "featured", false, "Only featured products")
	productsCmd.Flags().BoolVar(&productsNew, "new", false, "Only the new collection")
	rootCmd.AddCommand(productsCmd, productCmd, offersCmd, categoriesCmd, branchesCmd)
}

func runProducts(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	client := newClient(logger)
	products, err := client.Products(cmd.Context(), shopapi.ProductQuery{
		Page:          productsPage,
		PerPage:       productsPerPage,
		Search:        productsSearch,
		Category:      productsCategory,
		Featured:      productsFeatured,
		NewCollection: productsNew,
	})
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func runProduct(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	logger := newLogger()
	product, err := newClient(logger).Product(cmd.Context(), id)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Printf("%s (#%d)\n", product.Name, product.ID)
	fmt.Printf("  price:    %s\n", formatPrice(product.Price, product.DiscountPrice))
	if product.Category != "" {
		fmt.Printf("  category: %s\n", product.Category)
	}
	if len(product.Sizes) > 0 {
		fmt.Printf("  sizes:    %v\n", product.Sizes)
	}
	if product.Description != "" {
		fmt.Printf("  %s\n", product.Description)
	}
	return nil
}

func runOffers(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	products, err := newClient(logger).OffersProducts(cmd.Context())
	if err != nil {
		return err
	}
	printProducts(products)
	return nil
}

func runCategories(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	categories, err := newClient(logger).Categories(cmd.Context())
	if err != nil {
		return err
	}
	for _, cat := range categories {
		fmt.Printf("%4d  %s\n", cat.ID, cat.Name)
	}
	return nil
}

func runBranches(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	branches, err := newClient(logger).Branches(cmd.Context())
	if err != nil {
		return err
	}
	bold := color.New(color.Bold)
	for _, b := range branches {
		bold.Println(b.Name)
		if b.Address != "" {
			fmt.Printf("  %s\n", b.Address)
		}
		if b.Phone != "" {
			fmt.Printf("  %s\n", b.Phone)
		}
	}
	return nil
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("no products found")
		return
	}
	for _, p := range products {
		fmt.Printf("%6d  %-40s %s\n", p.ID, p.Name, formatPrice(p.Price, p.DiscountPrice))
	}
}

func formatPrice(price, discount float64) string {
	if discount > 0 && discount < price {
		old := color.New(color.CrossedOut).Sprintf("%.2f", price)
		return fmt.Sprintf("%s %s", old, color.GreenString("%.2f", discount))
	}
	return fmt.Sprintf("%.2f", price)
}
