package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/internal/cli"
)

var (
	resolveItemType string
	resolveSnapshot string
	resolveDB       string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve effective attributes for an item type",
	Long:  `Resolve the deduplicated set of effective attribute groups and attributes for an item type.`,
	Example: `  # Resolve against a snapshot file
  spesengine resolve --item-type product --snapshot catalog.yaml

  # Resolve against a live catalog database
  spesengine resolve --item-type product --db postgres://localhost/catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resolveItemType == "" {
			return cli.GeneralError("--item-type is required", nil)
		}

		snap, err := loadSnapshot(resolveSnapshot, resolveDB)
		if err != nil {
			return err
		}

		engine := spesengine.NewEngine(snap)
		res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: resolveItemType})
		if err != nil {
			return cli.GeneralError("resolving", err)
		}

		if quiet {
			return nil
		}

		fmt.Printf("Effective attribute groups for %s: %d\n", resolveItemType, len(res.Bindings))
		for _, b := range res.Bindings {
			name := b.AttributeGroupID
			if g, ok := engine.AttributeGroup(b.AttributeGroupID); ok && g.Name != "" {
				name = fmt.Sprintf("%s (%s)", g.Name, g.ID)
			}
			flags := ""
			if b.Required {
				flags += " required"
			}
			if b.Inherited {
				flags += " inherited"
			}
			fmt.Printf("  - %s%s\n", name, flags)
		}

		fmt.Printf("Effective attributes: %d\n", len(res.Attributes))
		for _, a := range res.Attributes {
			required := ""
			if a.Required {
				required = " (required)"
			}
			fmt.Printf("  - %s [%s]%s\n", a.Key, a.Type, required)
		}

		return nil
	},
}

func init() {
	f := resolveCmd.Flags()
	f.StringVar(&resolveItemType, "item-type", "", "item type id to resolve")
	f.StringVar(&resolveSnapshot, "snapshot", "", "path to snapshot file")
	f.StringVar(&resolveDB, "db", "", "database URL")
}
