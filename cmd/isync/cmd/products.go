package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
		Long: "Manage the product catalog: create, inspect, update, and delete\n" +
			"products that can be published to connected marketplaces.",
	}

	productsRoot.AddCommand(
		productListCmd(),
		productGetCmd(),
		productCreateCmd(),
		productUpdateCmd(),
		productDeleteCmd(),
	)

	return productsRoot
}

func productListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Example: `  isync products list
  isync products list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			products, err := c.ListProducts(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(products)
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			return printProductTable(products)
		},
	}
}

func productGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show product details",
		Example: `  isync products get abc123
  isync products get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func productFlags(cmd *cobra.Command, p *productFlagValues) {
	cmd.Flags().StringVar(&p.sku, "sku", "", "unique SKU")
	cmd.Flags().StringVar(&p.title, "title", "", "product title")
	cmd.Flags().StringVar(&p.description, "description", "", "product description")
	cmd.Flags().Float64Var(&p.price, "price", 0, "price in USD")
	cmd.Flags().IntVar(&p.quantity, "quantity", 1, "available quantity")
	cmd.Flags().StringVar(&p.condition, "condition", "", "condition (e.g. NEW, USED_GOOD)")
	cmd.Flags().StringVar(&p.brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&p.category, "category", "", "category label")
	cmd.Flags().StringArrayVar(&p.images, "image", nil, "image URL (repeatable)")
}

type productFlagValues struct {
	sku         string
	title       string
	description string
	price       float64
	quantity    int
	condition   string
	brand       string
	category    string
	images      []string
}

func (v *productFlagValues) product() *domain.Product {
	return &domain.Product{
		SKU:         v.sku,
		Title:       v.title,
		Description: v.description,
		Price:       v.price,
		Quantity:    v.quantity,
		Condition:   v.condition,
		Brand:       v.brand,
		Category:    v.category,
		Images:      v.images,
	}
}

func productCreateCmd() *cobra.Command {
	var flags productFlagValues

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new product",
		Example: `  # Create a basic product
  isync products create --sku WIDGET-01 --title "Widget" --price 19.99

  # Create a product with images and condition
  isync products create --sku CARD-42 --title "Graphics Card" --price 250 \
    --condition USED_GOOD --brand Acme \
    --image https://example.com/front.jpg --image https://example.com/back.jpg`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if flags.sku == "" || flags.title == "" {
				return fmt.Errorf("--sku and --title are required")
			}
			c := newClient()
			created, err := c.CreateProduct(context.Background(), flags.product())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Product created: %s (%s)\n", created.SKU, created.ID)
			return nil
		},
	}
	productFlags(cmd, &flags)

	return cmd
}

func productUpdateCmd() *cobra.Command {
	var flags productFlagValues

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Example: `  isync products update abc123 --sku WIDGET-01 --title "Widget v2" --price 24.99`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if flags.sku == "" || flags.title == "" {
				return fmt.Errorf("--sku and --title are required")
			}
			p := flags.product()
			p.ID = args[0]

			c := newClient()
			updated, err := c.UpdateProduct(context.Background(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Product updated: %s (%s)\n", updated.SKU, updated.ID)
			return nil
		},
	}
	productFlags(cmd, &flags)

	return cmd
}

func productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a product and its listings",
		Example: `  isync products delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteProduct(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Product deleted.")
			return nil
		},
	}
}
