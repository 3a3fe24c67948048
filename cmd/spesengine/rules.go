package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/internal/cli"
)

var (
	rulesItemType string
	rulesCategory string
	rulesFamily   string
	rulesSnapshot string
	rulesDB       string
	rulesCount    int
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List applicable association rules for a source scope",
	Long: `List the association rules applicable to a source scope.

With --count, each rule's cardinality bounds are additionally checked
against the given selection size.`,
	Example: `  # Rules applicable before any category is chosen
  spesengine rules --item-type product

  # Rules for a specific category/family selection
  spesengine rules --item-type product --category phones --family smartphones

  # Check a selection of 4 targets against each applicable rule
  spesengine rules --item-type product --category phones --count 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rulesItemType == "" {
			return cli.GeneralError("--item-type is required", nil)
		}

		snap, err := loadSnapshot(rulesSnapshot, rulesDB)
		if err != nil {
			return err
		}

		engine := spesengine.NewEngine(snap)
		req := spesengine.ResolutionRequest{
			ItemTypeID: rulesItemType,
			CategoryID: rulesCategory,
			FamilyID:   rulesFamily,
		}
		matches := engine.ApplicableRules(req)

		if quiet {
			// Still signal cardinality violations via exit code.
			if cmd.Flags().Changed("count") {
				for _, m := range matches {
					if v := spesengine.ValidateCardinality(m.Rule, rulesCount); !v.OK() {
						return cli.GeneralError(fmt.Sprintf("rule %s: %s", m.Rule.ID, v), nil)
					}
				}
			}
			return nil
		}

		fmt.Printf("Applicable rules: %d\n", len(matches))
		for _, m := range matches {
			bounds := fmt.Sprintf("min %d", m.Rule.MinTargets)
			if m.Rule.MaxTargets != nil && *m.Rule.MaxTargets > 0 {
				bounds += fmt.Sprintf(", max %d", *m.Rule.MaxTargets)
			} else {
				bounds += ", unbounded"
			}
			fmt.Printf("  - %s (%s, %s) [%s]\n", m.Rule.ID, m.Type.Name, m.Type.Cardinality, bounds)

			if cmd.Flags().Changed("count") {
				verdict := spesengine.ValidateCardinality(m.Rule, rulesCount)
				fmt.Printf("      count %d: %s\n", rulesCount, verdict)
			}
		}

		return nil
	},
}

func init() {
	f := rulesCmd.Flags()
	f.StringVar(&rulesItemType, "item-type", "", "source item type id")
	f.StringVar(&rulesCategory, "category", "", "source category id (empty = not chosen)")
	f.StringVar(&rulesFamily, "family", "", "source family id (empty = not chosen)")
	f.StringVar(&rulesSnapshot, "snapshot", "", "path to snapshot file")
	f.StringVar(&rulesDB, "db", "", "database URL")
	f.IntVar(&rulesCount, "count", 0, "selection size to validate against each rule")
}
