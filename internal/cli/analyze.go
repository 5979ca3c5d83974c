package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pencilmatch/internal/catalog"
	"pencilmatch/internal/colour"
	"pencilmatch/internal/export"
	"pencilmatch/internal/extract"
	"pencilmatch/internal/history"
	"pencilmatch/internal/image"
	"pencilmatch/internal/match"
	"pencilmatch/internal/pipeline"
)

var (
	// Analyze command flags
	analyzeColours       int
	analyzeMaxSize       int
	analyzePerBrand      int
	analyzeMaxDifference float64
	analyzeFormat        string
	analyzeOutput        string
	analyzeSwatch        string
	analyzeLayout        string
	analyzeShowPreview   bool
	analyzeComplementary bool
	analyzeShopping      string
	analyzeDB            string
	analyzeSession       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Extract dominant colours and match them to pencils",
	Long: `Analyse an image: extract its dominant colours, describe where each
colour appears, and rank catalogued pencils by perceptual closeness.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Analyse with the default 8 colours
  pencilmatch analyze photo.jpg

  # Extract 5 colours with terminal previews
  pencilmatch analyze --preview --colours 5 photo.png

  # Export the palette as JSON
  pencilmatch analyze --format json photo.jpg

  # Write a swatch sheet alongside the analysis
  pencilmatch analyze --swatch palette.png --layout grid photo.jpg

  # Include complementary pencil suggestions
  pencilmatch analyze --complementary photo.jpg

  # Print a de-duplicated pencil shopping list
  pencilmatch analyze --shopping text photo.jpg

  # Record the analysis in a local history database
  pencilmatch analyze --db history.db photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeColours, "colours", "c", 8, "number of colours to extract (3-15)")
	analyzeCmd.Flags().IntVar(&analyzeMaxSize, "max-size", 300, "downscale bound for the longer image dimension")
	analyzeCmd.Flags().IntVarP(&analyzePerBrand, "matches-per-brand", "m", 3, "maximum pencil matches per brand per colour")
	analyzeCmd.Flags().Float64Var(&analyzeMaxDifference, "max-difference", match.DefaultMaxDifference, "maximum colour difference to consider a match")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format (text, json, csv, css, scss, adobe, figma, affinity, photopea)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeSwatch, "swatch", "", "write a palette swatch PNG to this path")
	analyzeCmd.Flags().StringVar(&analyzeLayout, "layout", "horizontal", "swatch layout (horizontal, grid)")
	analyzeCmd.Flags().BoolVar(&analyzeShowPreview, "preview", false, "show colour previews in terminal")
	analyzeCmd.Flags().BoolVar(&analyzeComplementary, "complementary", false, "suggest pencils for the dominant colour's complement")
	analyzeCmd.Flags().StringVar(&analyzeShopping, "shopping", "", "append a pencil shopping list (text, csv, json)")
	analyzeCmd.Flags().StringVar(&analyzeDB, "db", "", "record the analysis in this SQLite database")
	analyzeCmd.Flags().StringVar(&analyzeSession, "session", "", "session id for history grouping (default: random)")
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	logger := newLogger(cmd)

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config := extract.Config{
		NumColors: analyzeColours,
		MaxSize:   analyzeMaxSize,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	img, format, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "format", format, "width", bounds.Dx(), "height", bounds.Dy())

	extractor := extract.NewExtractor()
	extractor.SetMaxSize(config.MaxSize)
	matcher := match.New(catalog.All())

	pipe := pipeline.New(extractor, matcher)
	pipe.SetLogger(logger)

	result := pipe.Run(img, config.NumColors, analyzePerBrand, analyzeMaxDifference)
	if len(result.Palette) == 0 {
		return fmt.Errorf("no colours could be extracted from %s", imagePath)
	}

	var complementary []match.Match
	if analyzeComplementary {
		complementary = matcher.Complementary(result.Palette[0].RGB)
	}

	if analyzeDB != "" {
		if err := recordAnalysis(imagePath, format, bounds.Dx(), bounds.Dy(), config.NumColors, result); err != nil {
			// Persistence failure must not invalidate the analysis.
			logger.Warn("failed to record analysis", "error", err)
		}
	}

	output, err := formatAnalysis(result, complementary, imagePath)
	if err != nil {
		return err
	}

	if analyzeShopping != "" {
		list, err := export.ShoppingList(result.Matches, export.ShoppingFormat(analyzeShopping))
		if err != nil {
			return err
		}
		output += "\n" + list
	}

	if analyzeSwatch != "" {
		if err := writeSwatch(result.Palette, analyzeSwatch, analyzeLayout); err != nil {
			return err
		}
		logger.Debug("swatch written", "path", analyzeSwatch)
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatAnalysis renders the analysis in the requested format.
func formatAnalysis(result pipeline.Result, complementary []match.Match, imagePath string) (string, error) {
	if analyzeFormat == "text" {
		return formatText(result, complementary), nil
	}

	meta := map[string]any{
		"source":                  imagePath,
		"processing_time_seconds": result.ProcessingTime.Seconds(),
	}
	out, err := export.Palette(export.Format(analyzeFormat), result.Palette, meta)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// formatText renders the human-readable report.
func formatText(result pipeline.Result, complementary []match.Match) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Extracted %d colours in %.2fs\n\n", len(result.Palette), result.ProcessingTime.Seconds())

	for i, c := range result.Palette {
		if analyzeShowPreview {
			fmt.Fprintf(&sb, "%d. %s  %s  %.1f%%\n", i+1, colour.Preview(c.RGB, 8), c.Hex, c.Percentage)
		} else {
			fmt.Fprintf(&sb, "%d. %s  %.1f%%\n", i+1, c.Hex, c.Percentage)
		}
		fmt.Fprintf(&sb, "   Location: %s (%s)\n", strings.Join(c.Location.Regions, ", "), c.Location.Distribution)

		for _, m := range matchesFor(result.Matches, c.RGB) {
			if analyzeShowPreview {
				fmt.Fprintf(&sb, "   %s  %s %s (%s) - dE %.1f, %s\n",
					colour.Preview(m.PencilRGB, 4), m.Brand, m.Name, m.Code, m.Difference, m.Quality)
			} else {
				fmt.Fprintf(&sb, "   %s %s (%s) - dE %.1f, %s\n",
					m.Brand, m.Name, m.Code, m.Difference, m.Quality)
			}
		}
		sb.WriteString("\n")
	}

	if len(complementary) > 0 {
		sb.WriteString("Complementary pencil suggestions:\n")
		for _, m := range complementary {
			fmt.Fprintf(&sb, "   %s %s (%s) - dE %.1f, %s\n",
				m.Brand, m.Name, m.Code, m.Difference, m.Quality)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// matchesFor returns the contiguous match run for one palette colour.
func matchesFor(matches []match.Match, target colour.RGB) []match.Match {
	var out []match.Match
	for _, m := range matches {
		if m.TargetRGB == target {
			out = append(out, m)
		}
	}
	return out
}

// writeSwatch renders the palette swatch PNG.
func writeSwatch(palette []extract.ExtractedColor, path, layout string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	defer f.Close()

	if err := export.SwatchPNG(f, palette, export.Layout(layout)); err != nil {
		return fmt.Errorf("failed to write swatch: %w", err)
	}
	return nil
}

// recordAnalysis persists one analysis run to the history database.
func recordAnalysis(imagePath, format string, width, height, numColors int, result pipeline.Result) error {
	db, err := history.Bootstrap(analyzeDB)
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID := analyzeSession
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	store := history.NewStore(db)
	if err := store.EnsureSession(sessionID); err != nil {
		return err
	}

	var fileSize int64
	if info, err := os.Stat(imagePath); err == nil {
		fileSize = info.Size()
	}

	imageID, err := store.SaveUpload(sessionID, history.Upload{
		Filename: imagePath,
		FileSize: fileSize,
		Format:   format,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		return err
	}

	analysisID, err := store.SaveAnalysis(imageID, sessionID, numColors, result.Palette, result.ProcessingTime)
	if err != nil {
		return err
	}

	return store.SaveMatches(analysisID, sessionID, result.Matches)
}
