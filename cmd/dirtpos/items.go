package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
)

func newItemsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage the product catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.store.Items()
			if len(items) == 0 {
				cmd.Println("no products yet")
				return nil
			}
			for _, it := range items {
				line := fmt.Sprintf("%s  %-24s price %s  cost %s",
					it.ID, it.Name, domain.FormatMoney(it.Price), domain.FormatMoney(it.Cost))
				if it.Vendor != "" {
					line += "  vendor " + it.Vendor
				}
				if len(it.Sizes) > 0 {
					sizes := make([]string, len(it.Sizes))
					for i, s := range it.Sizes {
						sizes[i] = fmt.Sprintf("%s(%d)", s.Size, s.Stock)
					}
					line += "  sizes " + strings.Join(sizes, ",")
				}
				if low := it.LowStock(); len(low) > 0 {
					line += "  LOW"
				}
				cmd.Println(line)
			}
			return nil
		},
	}

	var (
		name      string
		price     string
		cost      string
		vendor    string
		imageURL  string
		sizes     []string
		tags      []string
		threshold int
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog item",
		RunE: func(cmd *cobra.Command, args []string) error {
			priceCents, err := parseMoney(price)
			if err != nil {
				return err
			}
			costCents, err := parseMoney(cost)
			if err != nil {
				return err
			}
			sizeStock, err := parseSizes(sizes)
			if err != nil {
				return err
			}
			return a.store.AddItem(domain.ItemInput{
				Name:              name,
				Price:             priceCents,
				Cost:              costCents,
				Vendor:            vendor,
				ImageURL:          imageURL,
				Sizes:             sizeStock,
				Tags:              tags,
				LowStockThreshold: threshold,
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "display name (required)")
	add.Flags().StringVar(&price, "price", "0", "customer price, e.g. 19.99")
	add.Flags().StringVar(&cost, "cost", "0", "internal cost, e.g. 8.50")
	add.Flags().StringVar(&vendor, "vendor", "", "vendor label")
	add.Flags().StringVar(&imageURL, "image", "", "image reference")
	add.Flags().StringArrayVar(&sizes, "size", nil, "size variant as SIZE=STOCK, repeatable")
	add.Flags().StringArrayVar(&tags, "tag", nil, "tag, repeatable")
	add.Flags().IntVar(&threshold, "low-stock", 0, "low stock threshold (default 3)")
	_ = add.MarkFlagRequired("name")

	var (
		upName      string
		upPrice     string
		upCost      string
		upVendor    string
		upImageURL  string
		upSizes     []string
		upThreshold int
	)
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of a catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.ItemPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &upName
			}
			if cmd.Flags().Changed("price") {
				cents, err := parseMoney(upPrice)
				if err != nil {
					return err
				}
				patch.Price = &cents
			}
			if cmd.Flags().Changed("cost") {
				cents, err := parseMoney(upCost)
				if err != nil {
					return err
				}
				patch.Cost = &cents
			}
			if cmd.Flags().Changed("vendor") {
				patch.Vendor = &upVendor
			}
			if cmd.Flags().Changed("image") {
				patch.ImageURL = &upImageURL
			}
			if cmd.Flags().Changed("size") {
				sizeStock, err := parseSizes(upSizes)
				if err != nil {
					return err
				}
				patch.Sizes = &sizeStock
			}
			if cmd.Flags().Changed("low-stock") {
				patch.LowStockThreshold = &upThreshold
			}
			return a.store.UpdateItem(args[0], patch)
		},
	}
	update.Flags().StringVar(&upName, "name", "", "display name")
	update.Flags().StringVar(&upPrice, "price", "", "customer price, e.g. 19.99")
	update.Flags().StringVar(&upCost, "cost", "", "internal cost, e.g. 8.50")
	update.Flags().StringVar(&upVendor, "vendor", "", "vendor label")
	update.Flags().StringVar(&upImageURL, "image", "", "image reference")
	update.Flags().StringArrayVar(&upSizes, "size", nil, "replacement size list as SIZE=STOCK, repeatable")
	update.Flags().IntVar(&upThreshold, "low-stock", 0, "low stock threshold")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an item (recoverable with undo until the next delete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.DeleteItem(args[0])
			return nil
		},
	}

	undo := &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently deleted item",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.UndoDelete()
			return nil
		},
	}

	cmd.AddCommand(list, add, update, del, undo)
	return cmd
}

// parseSizes parses repeated SIZE=STOCK flags, e.g. M=5.
func parseSizes(specs []string) ([]domain.SizeStock, error) {
	var out []domain.SizeStock
	for _, spec := range specs {
		size, stockStr, ok := strings.Cut(spec, "=")
		if !ok || size == "" {
			return nil, fmt.Errorf("invalid size spec %q, want SIZE=STOCK", spec)
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock in size spec %q", spec)
		}
		out = append(out, domain.SizeStock{Size: size, Stock: stock})
	}
	return out, nil
}
