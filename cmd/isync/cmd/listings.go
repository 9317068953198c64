package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Publish products and inspect listings",
		Long: "Publish products to eBay and inspect the recorded listing\n" +
			"attempts, including failures.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsPublishCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all eBay listing attempts",
		Example: `  isync listings list
  isync listings list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			listings, err := c.ListListings(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(listings)
			}
			if len(listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			return printListingsTable(listings)
		},
	}
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <product-id>",
		Short:   "Show a product's current listing",
		Example: `  isync listings get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.ProductListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if l == nil {
				fmt.Println("Product has never been published.")
				return nil
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			return printListingDetail(l)
		},
	}
}

func listingsPublishCmd() *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "publish <product-id>",
		Short: "Publish a product to eBay",
		Long: "Runs the publish workflow for a product: provisions the inventory\n" +
			"location, upserts the inventory item, creates an offer, and publishes\n" +
			"it. Records one listing row for the attempt whether it succeeds or not.",
		Example: `  isync listings publish abc123 --category 175672`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if categoryID == "" {
				return fmt.Errorf("--category is required")
			}
			c := newClient()
			l, err := c.Publish(context.Background(), args[0], categoryID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			if l.Status == domain.ListingActive {
				fmt.Printf("Published: %s\n", l.ListingURL)
			} else {
				fmt.Printf("Publish failed: %s\n", l.ErrorMessage)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&categoryID, "category", "", "eBay category ID")

	return cmd
}
