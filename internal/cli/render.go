package cli

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joa23/gridtable/internal/grid"
	"github.com/joa23/gridtable/internal/imaging"
)

// imageExtensions are the file types included in a gallery scan.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type renderOptions struct {
	columns    int
	order      string
	output     string
	title      string
	target     string
	maxWidth   int
	maxHeight  int
	noBox      bool
	thumbDir   string
	makeThumbs bool
	watch      bool

	tableClass string
	tableID    string
	rowClass   string
	cellClass  string
	nameClass  string
	linkClass  string
	thumbClass string
}

// newRenderCmd creates the 'render' command
func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <directory>",
		Short: "Render a directory of images to an HTML gallery page",
		Long: `Render the images in a directory as an HTML table gallery.

Scans the directory for PNG, JPEG, GIF and WebP files, lays them out in
the requested number of columns and writes a standalone HTML page to
--output (or stdout). With --make-thumbs, resized thumbnail files are
generated under --thumb-dir and used in place of the originals.`,
		Example: `  gridtable render ./photos --columns 4 --max-width 200 --output ./photos/index.html
  gridtable render ./photos --columns 3 --order top-to-down
  gridtable render ./photos --make-thumbs --max-width 160 --output ./photos/index.html --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.columns, "columns", 1, "number of table columns")
	flags.StringVar(&opts.order, "order", "", "fill order: 'left-to-right' (default) or 'top-to-down'")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&opts.title, "title", "Gallery", "page title")
	flags.StringVar(&opts.target, "target", "", "target attribute for image links")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "maximum thumbnail width in pixels (0 = unconstrained)")
	flags.IntVar(&opts.maxHeight, "max-height", 0, "maximum thumbnail height in pixels (0 = unconstrained)")
	flags.BoolVar(&opts.noBox, "no-box", false, "do not draw the enclosing thumbnail box")
	flags.StringVar(&opts.thumbDir, "thumb-dir", "thumbs", "thumbnail directory, relative to the image directory")
	flags.BoolVar(&opts.makeThumbs, "make-thumbs", false, "generate resized thumbnail files under --thumb-dir")
	flags.BoolVar(&opts.watch, "watch", false, "re-render whenever the directory changes (requires --output)")

	flags.StringVar(&opts.tableClass, "table-class", "", "class attribute of the <table>")
	flags.StringVar(&opts.tableID, "table-id", "", "id attribute of the <table>")
	flags.StringVar(&opts.rowClass, "row-class", "", "class attribute of each <tr>")
	flags.StringVar(&opts.cellClass, "cell-class", "", "class attribute of each <td>")
	flags.StringVar(&opts.nameClass, "name-class", "", "class attribute of the name <div>")
	flags.StringVar(&opts.linkClass, "link-class", "", "class attribute of each <a>")
	flags.StringVar(&opts.thumbClass, "thumb-class", "", "class attribute of the thumbnail box <div>")

	return cmd
}

func runRender(cmd *cobra.Command, dir string, opts *renderOptions) error {
	if opts.makeThumbs && opts.maxWidth == 0 && opts.maxHeight == 0 {
		return fmt.Errorf("--make-thumbs requires --max-width or --max-height")
	}
	if opts.watch && opts.output == "" {
		return fmt.Errorf("--watch requires --output")
	}

	if err := renderOnce(cmd, dir, opts); err != nil {
		return err
	}
	if opts.watch {
		return watchAndRender(cmd, dir, opts)
	}
	return nil
}

// renderOnce performs a single scan-and-render pass.
func renderOnce(cmd *cobra.Command, dir string, opts *renderOptions) error {
	images, err := scanImages(dir)
	if err != nil {
		return err
	}

	if opts.makeThumbs {
		if err := generateThumbnails(dir, opts.thumbDir, images, opts.maxWidth, opts.maxHeight); err != nil {
			return err
		}
	}

	order, err := grid.ParseOrder(opts.order)
	if err != nil {
		return err
	}

	cfg := grid.NewConfig[galleryImage]()
	cfg.Columns = opts.columns
	cfg.Order = order
	cfg.Target = opts.target
	cfg.Style = grid.Style{
		TableClass: opts.tableClass,
		TableID:    opts.tableID,
		RowClass:   opts.rowClass,
		CellClass:  opts.cellClass,
		NameClass:  opts.nameClass,
		LinkClass:  opts.linkClass,
		ThumbClass: opts.thumbClass,
	}
	cfg.Thumbs = grid.Thumbnails{
		WebRoot:   dir,
		MaxWidth:  opts.maxWidth,
		MaxHeight: opts.maxHeight,
		DrawBox:   !opts.noBox,
	}
	if opts.makeThumbs {
		cfg.Thumbs.Dir = opts.thumbDir
	}
	cfg.Name = func(img galleryImage) string { return img.Name }
	cfg.URL = func(img galleryImage) string { return img.File }
	cfg.ThumbnailFile = func(img galleryImage) string { return img.File }

	page := renderPage(opts.title, grid.Format(images, cfg))

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), page)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	return nil
}

// galleryImage is one image file found in the scanned directory.
type galleryImage struct {
	Name string // file name without extension, used as the display name
	File string // file name with extension
}

// scanImages lists the image files directly under root in name order,
// skipping dotfiles and subdirectories (which covers the thumbnail
// directory).
func scanImages(root string) ([]galleryImage, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var images []galleryImage
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		images = append(images, galleryImage{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			File: name,
		})
	}
	sort.Slice(images, func(i, j int) bool { return images[i].File < images[j].File })
	return images, nil
}

// generateThumbnails writes resized copies of images into root/thumbDir.
// Files that fail to decode are skipped with a warning; the gallery then
// falls back to an empty thumbnail box for them.
func generateThumbnails(root, thumbDir string, images []galleryImage, maxWidth, maxHeight int) error {
	outDir := filepath.Join(root, thumbDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	for _, img := range images {
		data, err := os.ReadFile(filepath.Join(root, img.File))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", img.File, err)
		}
		resized, err := imaging.Resize(data, maxWidth, maxHeight)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping thumbnail for %s: %v\n", img.File, err)
			continue
		}
		if err := os.WriteFile(filepath.Join(outDir, img.File), resized, 0o644); err != nil {
			return fmt.Errorf("failed to write thumbnail for %s: %w", img.File, err)
		}
	}
	return nil
}

// renderPage wraps the table markup in a minimal standalone HTML page.
func renderPage(title, table string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(table)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
