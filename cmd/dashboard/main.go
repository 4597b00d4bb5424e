package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/client"
	"go.uber.org/zap"
)

// Terminal view of the dashboard. Reads go through the caching client, so the
// listing still works from the last snapshot when the server is unreachable.
func main() {
	serverURL := flag.String("server", "http://localhost:8080", "API server base URL")
	cacheDir := flag.String("cache-dir", defaultCacheDir(), "directory for offline snapshots")
	query := flag.String("query", "", "filter items by name, description or product code")
	flag.Parse()

	if err := run(*serverURL, *cacheDir, *query); err != nil {
		log.Fatalf("dashboard failed: %v", err)
	}
}

func run(serverURL, cacheDir, query string) error {
	zlog, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer zlog.Sync()

	api, err := client.NewCachedClient(client.NewHTTPClient(serverURL), cacheDir, zlog)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	ctx := context.Background()

	items, err := api.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	types, err := api.ListTypes(ctx)
	if err != nil {
		return fmt.Errorf("list types: %w", err)
	}
	categories, err := api.ListCategories(ctx, nil)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if api.Offline() {
		fmt.Println("OFFLINE: server unreachable, showing last cached data")
	}

	if query != "" {
		items = filterItems(items, query)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tTYPE\tCATEGORY\tPRICE\tQTY\tDISCOUNT")
	for _, it := range items {
		discount := "-"
		if it.Discount > 0 {
			discount = fmt.Sprintf("%.0f%%", it.Discount)
			if it.DiscountDate != nil {
				discount += " since " + it.DiscountDate.Format("2006-01-02")
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\t%s\n",
			it.ProductCode, it.Name, it.TypeName, it.CategoryName, it.Price, it.Quantity, discount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d items, %d types, %d categories\n", len(items), len(types), len(categories))
	return nil
}

func filterItems(items []client.Item, query string) []client.Item {
	matched := make([]client.Item, 0, len(items))
	for _, it := range items {
		if containsFold(it.Name, query) || containsFold(it.Description, query) || containsFold(it.ProductCode, query) {
			matched = append(matched, it)
		}
	}
	return matched
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".minidashboard-cache"
	}
	return filepath.Join(base, "minidashboard")
}
