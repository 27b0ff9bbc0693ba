package main

import (
	"browse/internal/aggregator"
	"browse/internal/config"
	"browse/pkg/domain"
	"browse/pkg/serrors"
	"context"
	"fmt"
	"io"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

const (
	setAll   = "all"
	setMain  = "main"
	setOther = "other"
)

// printCategories runs the aggregation selected by set and writes it to w as
// a JSON array.
func printCategories(ctx context.Context, w io.Writer, agg aggregator.Aggregator, set string) error {
	var cs []domain.EnrichedCategory
	switch set {
	case setAll:
		cs = agg.Enriched(ctx)
	case setMain:
		cs = agg.Main(ctx)
	case setOther:
		cs = agg.Other(ctx)
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown set %q, expected %s, %s or %s", set, setAll, setMain, setOther)
	}

	var e jx.Encoder
	e.SetIdent(2)
	domain.EncodeEnrichedCategories(&e, cs)
	if _, err := fmt.Fprintln(w, e.String()); err != nil {
		return fmt.Errorf("could not write categories: %w", err)
	}

	return nil
}

func categoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Prints one category view as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _ := cmd.Flags().GetString("set")
			ctx := cmd.Context()

			return printCategories(ctx, cmd.OutOrStdout(), getAggregator(ctx, cfg, nil), set)
		},
	}

	cmd.Flags().String("set", setAll, "Category view: all, main or other")

	return cmd
}
