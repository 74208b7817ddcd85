package grid

import (
	"fmt"
	"html"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joa23/gridtable/internal/imaging"
)

// writeCell writes one <td>. The cell body is either the RenderEntity
// callback output verbatim, or the default composition: thumbnail block
// first, then the name/link block.
func writeCell[T any](b *strings.Builder, entity T, cfg Config[T], width string) {
	writeTag(b, "td", attr{"class", cfg.Style.CellClass}, attr{"width", width})
	if cfg.RenderEntity != nil {
		b.WriteString(cfg.RenderEntity(entity))
	} else {
		writeThumbnail(b, entity, cfg)
		writeNameLink(b, entity, cfg)
	}
	b.WriteString("</td>")
}

func writeThumbnail[T any](b *strings.Builder, entity T, cfg Config[T]) {
	var file string
	if cfg.ThumbnailFile != nil {
		file = cfg.ThumbnailFile(entity)
	}

	var img string
	if file != "" {
		img = thumbnailImg(file, cfg.Thumbs)
	}

	if cfg.Thumbs.DrawBox {
		writeTag(b, "div", attr{"class", cfg.Style.ThumbClass}, attr{"style", boxStyle(cfg.Thumbs)})
		b.WriteString(img)
		b.WriteString("</div>")
		return
	}
	b.WriteString(img)
}

// thumbnailImg builds the <img> fragment for file, or returns "" when the
// file is missing or not a decodable image.
func thumbnailImg(file string, t Thumbnails) string {
	prober := t.Prober
	if prober == nil {
		prober = imaging.FileProber{}
	}

	w, h, err := prober.Probe(filepath.Join(t.WebRoot, t.Dir, file))
	if err != nil {
		return ""
	}
	w, h = imaging.Fit(w, h, t.MaxWidth, t.MaxHeight)

	attrs := []attr{{"src", path.Join(t.Dir, file)}}
	// A dimension attribute accompanies its constraint: unconstrained
	// axes are left to the browser.
	if t.MaxWidth > 0 {
		attrs = append(attrs, attr{"width", strconv.Itoa(w)})
	}
	if t.MaxHeight > 0 {
		attrs = append(attrs, attr{"height", strconv.Itoa(h)})
	}

	var b strings.Builder
	writeTag(&b, "img", attrs...)
	return b.String()
}

// boxStyle fixes the placeholder box to the configured max dimensions so
// cells line up whether or not an image is present.
func boxStyle(t Thumbnails) string {
	parts := []string{"text-align:center"}
	if t.MaxWidth > 0 {
		parts = append(parts, fmt.Sprintf("width:%dpx", t.MaxWidth))
	}
	if t.MaxHeight > 0 {
		parts = append(parts, fmt.Sprintf("height:%dpx", t.MaxHeight))
	}
	return strings.Join(parts, ";")
}

func writeNameLink[T any](b *strings.Builder, entity T, cfg Config[T]) {
	var name, url string
	if cfg.Name != nil {
		name = cfg.Name(entity)
	}
	if cfg.URL != nil {
		url = cfg.URL(entity)
	}
	if name == "" && url == "" {
		return
	}

	writeTag(b, "div", attr{"class", cfg.Style.NameClass})
	if url != "" {
		writeTag(b, "a", attr{"href", url}, attr{"class", cfg.Style.LinkClass}, attr{"target", cfg.Target})
		b.WriteString(html.EscapeString(name))
		b.WriteString("</a>")
	} else {
		b.WriteString(html.EscapeString(name))
	}
	b.WriteString("</div>")
}
