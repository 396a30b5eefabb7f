package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/pricing"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/store"
)

func newCheckoutCmd(a *app) *cobra.Command {
	var (
		tender          string
		cashGiven       string
		discountPercent float64
		discountFixed   string
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Finalize the current cart as a sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.Tender(tender)
			if !kind.Valid() {
				return fmt.Errorf("tender must be %q or %q", domain.TenderCash, domain.TenderCard)
			}

			var discount *domain.Discount
			switch {
			case discountPercent > 0 && discountFixed != "":
				return fmt.Errorf("use either --discount-percent or --discount-fixed, not both")
			case discountPercent > 0:
				discount = &domain.Discount{Kind: domain.DiscountPercent, Value: discountPercent}
			case discountFixed != "":
				amount, err := parseMoney(discountFixed)
				if err != nil {
					return err
				}
				discount = &domain.Discount{Kind: domain.DiscountFixed, Value: float64(amount)}
			}

			opts := store.SaleOptions{Tender: kind, Discount: discount}
			if kind == domain.TenderCash && cashGiven != "" {
				paid, err := parseMoney(cashGiven)
				if err != nil {
					return err
				}
				// The store trusts the caller on cash sufficiency; the
				// terminal is where underpayment gets rejected.
				preview := pricing.Compute(a.store.Cart(), discount, a.store.Settings().TaxRate)
				if paid < preview.Total {
					return fmt.Errorf("cash %s is less than total %s",
						domain.FormatMoney(paid), domain.FormatMoney(preview.Total))
				}
				opts.AmountPaid = &paid
			}

			txn, err := a.store.CompleteSale(opts)
			if err != nil {
				return err
			}
			cmd.Println("sale", txn.ID)
			cmd.Println("subtotal", domain.FormatMoney(txn.Subtotal))
			cmd.Println("tax     ", domain.FormatMoney(txn.Tax))
			cmd.Println("total   ", domain.FormatMoney(txn.Total))
			if txn.Change != nil {
				cmd.Println("change  ", domain.FormatMoney(*txn.Change))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tender, "tender", "card", "payment method: cash or card")
	cmd.Flags().StringVar(&cashGiven, "cash-given", "", "cash received, e.g. 30.00 (cash tender)")
	cmd.Flags().Float64Var(&discountPercent, "discount-percent", 0, "whole-cart percent discount, 0-100")
	cmd.Flags().StringVar(&discountFixed, "discount-fixed", "", "whole-cart fixed discount, e.g. 2.50")
	return cmd
}
