package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/internal/cli"
)

var (
	validateSnapshot string
	validateDB       string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a snapshot for structural issues",
	Long: `Check a catalog snapshot for structural issues.

Reports hierarchy cycles and stale references. Resolution tolerates both
silently, so findings are data-quality problems rather than engine errors;
the command exits non-zero when any are found.`,
	Example: `  # Validate a snapshot file
  spesengine validate --snapshot catalog.yaml

  # Validate a live catalog
  spesengine validate --db postgres://localhost/catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(validateSnapshot, validateDB)
		if err != nil {
			return err
		}

		findings := 0

		if err := catalog.DetectCycles(catalog.CategoryLinks(snap.Categories)); err != nil {
			fmt.Printf("category hierarchy: %v\n", err)
			findings++
		}
		if err := catalog.DetectCycles(catalog.FamilyLinks(snap.Families)); err != nil {
			fmt.Printf("family hierarchy: %v\n", err)
			findings++
		}

		engine := spesengine.NewEngine(snap)
		for _, ref := range engine.StaleReferences() {
			fmt.Printf("stale reference: %s\n", ref)
			findings++
		}

		if findings > 0 {
			return cli.GeneralError(fmt.Sprintf("%d structural issue(s) found", findings), nil)
		}

		if !quiet {
			fmt.Printf("Snapshot is structurally sound: %d item types, %d categories, %d families, %d attribute groups.\n",
				len(snap.ItemTypes), len(snap.Categories), len(snap.Families), len(snap.AttributeGroups))
		}
		return nil
	},
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateSnapshot, "snapshot", "", "path to snapshot file")
	f.StringVar(&validateDB, "db", "", "database URL")
}
