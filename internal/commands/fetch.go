package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/szyszomat/KiedySmieciKRK/internal/catalog"
	"github.com/szyszomat/KiedySmieciKRK/internal/upstream"
)

func newFetchCmd(opts *rootOptions) *cobra.Command {
	var street, number string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Resolve an address and download its schedule image",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := upstream.NewClient(opts.baseURL, opts.token)
			resolver := catalog.NewResolver(client)
			ctx := cmd.Context()

			streetEntry, err := resolver.ResolveStreet(ctx, street)
			if err != nil {
				return fmt.Errorf("street %q: %w", street, err)
			}
			log.Info("street resolved", "name", streetEntry.Name, "id", streetEntry.ID)

			houseEntry, err := resolver.ResolveHouseNumber(ctx, streetEntry.ID, number)
			if err != nil {
				return fmt.Errorf("house number %q on %s: %w", number, streetEntry.Name, err)
			}
			log.Info("house number resolved", "name", houseEntry.Name, "id", houseEntry.ID)

			img, err := client.ScheduleImage(ctx, streetEntry.ID, houseEntry.ID)
			if err != nil {
				return err
			}

			store, err := upstream.NewStore(opts.dataDir)
			if err != nil {
				return err
			}
			path, err := store.SaveImage(streetEntry.Name, houseEntry.Name, img)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schedule for %s %s saved to %s\n", streetEntry.Name, houseEntry.Name, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&street, "street", "", "street name (free text)")
	cmd.Flags().StringVar(&number, "number", "", "house number (free text)")
	_ = cmd.MarkFlagRequired("street")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
