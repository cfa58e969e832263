package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all saved orders, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, orders, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer repository.Close(db, rootLogger)

		rows, err := orders.List(ctx)
		if err != nil {
			return err
		}
		for _, o := range rows {
			fmt.Printf("[%d] %s  po=%s  customer=%s  total=%s  courier=%s\n",
				o.ID,
				o.AddedAt,
				o.Fields[record.FieldPurchaseOrderNo],
				o.Fields[record.FieldCustomer],
				o.Fields[record.FieldTotalAmount],
				o.Fields[record.FieldCourier],
			)
		}
		fmt.Printf("%d order(s)\n", len(rows))
		return nil
	},
}
