package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/content"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the site content",
	}
	cmd.AddCommand(newContentCheckCmd())
	return cmd
}

func newContentCheckCmd() *cobra.Command {
	var file, images string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the content file and measure every project image",
		Example: `  # Check the embedded content against ./images
  portfolio content check

  # Check a custom content file
  portfolio content check --file site.yaml --images ./public/images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := content.Load(file)
			if err != nil {
				return err
			}
			loader := assets.NewLoader(images, "/images")
			out := cmd.OutOrStdout()

			failed := 0
			for _, p := range site.Projects {
				fmt.Fprintf(out, "%s (%d images)\n", p.ID, len(p.Images))
				for i, ref := range p.Images {
					w, h, err := loader.Size(ref)
					if err != nil {
						failed++
						fmt.Fprintf(out, "  [%d] %s: %v (placeholder)\n", i, ref, err)
						continue
					}
					fmt.Fprintf(out, "  [%d] %s: %dx%d ratio %.3f\n", i, ref, w, h, float64(w)/float64(h))
				}
			}
			fmt.Fprintf(out, "%d projects, %d technologies, %d experiences, %d images unavailable\n",
				len(site.Projects), len(site.Technologies), len(site.Experiences), failed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Content YAML file (default: embedded content)")
	cmd.Flags().StringVar(&images, "images", "./images", "Directory served at /images")

	return cmd
}
