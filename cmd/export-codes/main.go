package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/config"
	"github.com/quotallc/grabbit-rewards/internal/domain"
	"github.com/quotallc/grabbit-rewards/internal/export"
	"github.com/quotallc/grabbit-rewards/internal/service"
	"github.com/quotallc/grabbit-rewards/internal/shopify"
)

// export-codes runs one discount export from the command line, without the
// web UI: it issues a code to every recent buyer of the given product and
// writes the resulting CSV to stdout or a file.
func main() {
	productID := flag.String("product", "", "target product GID (e.g. gid://shopify/Product/123)")
	amount := flag.String("amount", "", "discount amount in major units (e.g. 10.00)")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *productID == "" || *amount == "" {
		fmt.Fprintln(os.Stderr, "Usage: export-codes -product <gid> -amount <amount> [-out file.csv]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	admin := shopify.NewAdmin(cfg.Shopify, logger)
	codes := service.NewCodeGenerator(cfg.Discount.CodePrefix, nil)
	discounts := service.NewDiscountService(admin, codes, logger)

	results, err := discounts.IssueDiscounts(context.Background(), domain.DiscountRequest{
		ProductID: *productID,
		Amount:    *amount,
		Scope:     cfg.Discount.Scope,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	csvBody, err := export.ToCSV(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize CSV: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(csvBody)
	} else {
		if err := os.WriteFile(*out, []byte(csvBody), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *out, err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Issued %d discount code(s)\n", len(results))
}
