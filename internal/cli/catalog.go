package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pencilmatch/internal/catalog"
	"pencilmatch/internal/colour"
)

var catalogShowPreview bool

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog [brand]",
	Short: "List catalogued pencil brands and colours",
	Long: `List the built-in pencil catalog. Without arguments the available
brands are shown; with a brand name its pencils are listed.

Examples:
  # List brands
  pencilmatch catalog

  # List one brand's pencils with terminal previews
  pencilmatch catalog --preview Prismacolor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogShowPreview, "preview", false, "show colour previews in terminal")
}

// runCatalog executes the catalog command.
func runCatalog(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Available brands:")
		for _, brand := range catalog.Brands() {
			fmt.Printf("  %-16s %d pencils\n", brand, len(catalog.ByBrand(brand)))
		}
		return nil
	}

	brand := matchBrand(args[0])
	if brand == "" {
		return fmt.Errorf("unknown brand %q (run 'pencilmatch catalog' to list brands)", args[0])
	}

	pencils := catalog.ByBrand(brand)
	fmt.Printf("%s (%d pencils):\n", brand, len(pencils))
	for _, p := range pencils {
		label := fmt.Sprintf("%s (%s)", p.Name, p.Code)
		if catalogShowPreview {
			fmt.Printf("  %s\n", colour.FormatWithLabel(p.RGB, label, 4))
		} else {
			fmt.Printf("  %-32s %s\n", label, p.RGB.Hex())
		}
	}
	return nil
}

// matchBrand resolves a case-insensitive brand argument to its
// canonical catalog name.
func matchBrand(arg string) string {
	for _, brand := range catalog.Brands() {
		if strings.EqualFold(arg, brand) {
			return brand
		}
	}
	return ""
}
