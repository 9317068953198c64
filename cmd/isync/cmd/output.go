package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSKU\tTITLE\tPRICE\tQTY\tCONDITION\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t$%.2f\t%d\t%s\n",
			products[i].ID,
			products[i].SKU,
			truncate(products[i].Title, 40),
			products[i].Price,
			products[i].Quantity,
			products[i].Condition,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("SKU:\t%s\n", p.SKU)
	tw.writef("Title:\t%s\n", p.Title)
	tw.writef("Description:\t%s\n", truncate(p.Description, 60))
	tw.writef("Price:\t$%.2f\n", p.Price)
	tw.writef("Quantity:\t%d\n", p.Quantity)
	tw.writef("Condition:\t%s\n", p.Condition)
	tw.writef("Brand:\t%s\n", p.Brand)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("Images:\t%s\n", strings.Join(p.Images, ", "))
	return tw.finish()
}

func printConnectionDetail(c *domain.MarketplaceConnection) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", c.ID)
	tw.writef("Marketplace:\t%s\n", c.Marketplace)
	tw.writef("Name:\t%s\n", c.Name)
	tw.writef("Status:\t%s\n", c.Status)
	tw.writef("Connected:\t%s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSKU\tTITLE\tSTATUS\tLISTING\tERROR\n")
	for i := range listings {
		l := &listings[i]
		external := "-"
		if l.ExternalID != "" {
			external = l.ExternalID
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.ProductSKU,
			truncate(l.ProductTitle, 40),
			l.Status,
			external,
			truncate(l.ErrorMessage, 40),
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Product:\t%s\n", l.ProductID)
	tw.writef("Status:\t%s\n", l.Status)
	tw.writef("Listing ID:\t%s\n", l.ExternalID)
	tw.writef("Offer ID:\t%s\n", l.OfferID)
	tw.writef("URL:\t%s\n", l.ListingURL)
	if l.ErrorMessage != "" {
		tw.writef("Error:\t%s\n", l.ErrorMessage)
	}
	tw.writef("Created:\t%s\n", l.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
