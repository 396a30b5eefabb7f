package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Build the current sale",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show cart lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := a.store.Cart()
			if len(lines) == 0 {
				cmd.Println("cart is empty")
				return nil
			}
			var subtotal domain.Money
			for i, l := range lines {
				label := l.Name
				if l.Size != "" {
					label += " (" + l.Size + ")"
				}
				cmd.Printf("%d  %-28s x%d  %s\n", i, label, l.Qty, domain.FormatMoney(l.Subtotal()))
				subtotal += l.Subtotal()
			}
			cmd.Println("subtotal", domain.FormatMoney(subtotal))
			return nil
		},
	}

	var (
		size string
		qty  int
	)
	add := &cobra.Command{
		Use:   "add ITEM_ID",
		Short: "Add an item to the cart, snapshotting its current price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, ok := findItem(a.store.Items(), args[0])
			if !ok {
				return fmt.Errorf("item %q not found", args[0])
			}
			return a.store.AddToCart(domain.LineItem{
				ItemID:    item.ID,
				Name:      item.Name,
				Size:      size,
				Qty:       qty,
				UnitPrice: item.Price,
				UnitCost:  item.Cost,
				ImageURL:  item.ImageURL,
			})
		},
	}
	add.Flags().StringVar(&size, "size", "", "size variant")
	add.Flags().IntVar(&qty, "qty", 1, "quantity")

	setQty := &cobra.Command{
		Use:   "qty INDEX QTY",
		Short: "Change a line quantity; zero removes the line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			a.store.SetCartQty(index, quantity)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			a.store.RemoveCartLine(index)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.ClearCart()
			return nil
		},
	}

	cmd.AddCommand(list, add, setQty, remove, clear)
	return cmd
}

func findItem(items []domain.Item, id string) (domain.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}
