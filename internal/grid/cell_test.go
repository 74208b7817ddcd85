package grid

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
)

// fakeProber reports fixed dimensions and records the probed path,
// standing in for the filesystem.
type fakeProber struct {
	width  int
	height int
	err    error
	path   string
}

func (p *fakeProber) Probe(path string) (int, int, error) {
	p.path = path
	if p.err != nil {
		return 0, 0, p.err
	}
	return p.width, p.height, nil
}

// thumbConfig treats each entity as its own thumbnail file name.
func thumbConfig(t Thumbnails) Config[string] {
	cfg := NewConfig[string]()
	cfg.Thumbs = t
	cfg.ThumbnailFile = func(s string) string { return s }
	return cfg
}

func TestCellThumbnailWidthScaling(t *testing.T) {
	// 800x400 against max width 400: scaled to 400x200, and with no
	// height constraint the height attribute is omitted.
	cfg := thumbConfig(Thumbnails{
		MaxWidth: 400,
		Prober:   &fakeProber{width: 800, height: 400},
	})

	doc := parseHTML(t, Format([]string{"photo.jpg"}, cfg))

	img := htmlquery.FindOne(doc, "//img")
	if img == nil {
		t.Fatal("expected an <img> element")
	}
	if got := htmlquery.SelectAttr(img, "src"); got != "photo.jpg" {
		t.Errorf("src = %q, want %q", got, "photo.jpg")
	}
	if got := htmlquery.SelectAttr(img, "width"); got != "400" {
		t.Errorf("width = %q, want %q", got, "400")
	}
	if n := htmlquery.FindOne(doc, "//img[@height]"); n != nil {
		t.Error("height attribute should be omitted when max height is unset")
	}
}

func TestCellThumbnailTwoStepScaling(t *testing.T) {
	// 800x600 fitted to max width 400 gives 400x300; the height pass then
	// fits 300 to 150, halving the width again.
	cfg := thumbConfig(Thumbnails{
		MaxWidth:  400,
		MaxHeight: 150,
		Prober:    &fakeProber{width: 800, height: 600},
	})

	doc := parseHTML(t, Format([]string{"photo.jpg"}, cfg))

	img := htmlquery.FindOne(doc, "//img")
	if img == nil {
		t.Fatal("expected an <img> element")
	}
	if got := htmlquery.SelectAttr(img, "width"); got != "200" {
		t.Errorf("width = %q, want %q", got, "200")
	}
	if got := htmlquery.SelectAttr(img, "height"); got != "150" {
		t.Errorf("height = %q, want %q", got, "150")
	}
}

func TestCellThumbnailProbePath(t *testing.T) {
	prober := &fakeProber{width: 10, height: 10}
	cfg := thumbConfig(Thumbnails{
		WebRoot: "/var/www",
		Dir:     "thumbs",
		Prober:  prober,
	})

	doc := parseHTML(t, Format([]string{"a.png"}, cfg))

	if want := filepath.Join("/var/www", "thumbs", "a.png"); prober.path != want {
		t.Errorf("probed %q, want %q", prober.path, want)
	}
	img := htmlquery.FindOne(doc, "//img")
	if img == nil {
		t.Fatal("expected an <img> element")
	}
	if got := htmlquery.SelectAttr(img, "src"); got != "thumbs/a.png" {
		t.Errorf("src = %q, want web path %q", got, "thumbs/a.png")
	}
}

func TestCellThumbnailMissingFile(t *testing.T) {
	cfg := thumbConfig(Thumbnails{
		MaxWidth:  400,
		MaxHeight: 300,
		DrawBox:   true,
		Prober:    &fakeProber{err: errors.New("no such file")},
	})

	out := Format([]string{"gone.png"}, cfg)
	doc := parseHTML(t, out)

	if n := htmlquery.FindOne(doc, "//img"); n != nil {
		t.Error("missing file should not emit an <img>")
	}
	box := htmlquery.FindOne(doc, "//td/div")
	if box == nil {
		t.Fatal("expected the placeholder box to be drawn anyway")
	}
	style := htmlquery.SelectAttr(box, "style")
	if !strings.Contains(style, "width:400px") || !strings.Contains(style, "height:300px") {
		t.Errorf("box style = %q, want fixed max dimensions", style)
	}
}

func TestCellBoxWithoutThumbnailCallback(t *testing.T) {
	// Default config draws the box even when no thumbnail extractor is
	// supplied at all.
	cfg := NewConfig[string]()

	doc := parseHTML(t, Format([]string{"A"}, cfg))

	if n := htmlquery.FindOne(doc, "//td/div"); n == nil {
		t.Error("expected an empty placeholder box")
	}
	if n := htmlquery.FindOne(doc, "//img"); n != nil {
		t.Error("no thumbnail callback should mean no <img>")
	}
}

func TestCellNoBox(t *testing.T) {
	cfg := NewConfig[string]()
	cfg.Thumbs.DrawBox = false

	doc := parseHTML(t, Format([]string{"A"}, cfg))

	if n := htmlquery.FindOne(doc, "//td/div"); n != nil {
		t.Error("DrawBox=false should not emit a box")
	}
}

func TestCellNameAndLink(t *testing.T) {
	cfg := NewConfig[string]()
	cfg.Thumbs.DrawBox = false
	cfg.Target = "_blank"
	cfg.Style.NameClass = "name"
	cfg.Style.LinkClass = "pic"
	cfg.Name = func(s string) string { return s }
	cfg.URL = func(s string) string { return s + ".html" }

	doc := parseHTML(t, Format([]string{"sunset"}, cfg))

	a := htmlquery.FindOne(doc, "//td/div/a")
	if a == nil {
		t.Fatal("expected a link inside the name block")
	}
	if got := htmlquery.SelectAttr(a, "href"); got != "sunset.html" {
		t.Errorf("href = %q, want %q", got, "sunset.html")
	}
	if got := htmlquery.SelectAttr(a, "target"); got != "_blank" {
		t.Errorf("target = %q, want %q", got, "_blank")
	}
	if got := htmlquery.SelectAttr(a, "class"); got != "pic" {
		t.Errorf("link class = %q, want %q", got, "pic")
	}
	if got := htmlquery.InnerText(a); got != "sunset" {
		t.Errorf("link text = %q, want %q", got, "sunset")
	}
}

func TestCellNameWithoutURL(t *testing.T) {
	cfg := NewConfig[string]()
	cfg.Thumbs.DrawBox = false
	cfg.Name = func(s string) string { return s }

	doc := parseHTML(t, Format([]string{"sunset"}, cfg))

	if n := htmlquery.FindOne(doc, "//a"); n != nil {
		t.Error("no URL extractor should mean no link")
	}
	div := htmlquery.FindOne(doc, "//td/div")
	if div == nil {
		t.Fatal("expected a name block")
	}
	if got := htmlquery.InnerText(div); got != "sunset" {
		t.Errorf("name text = %q, want %q", got, "sunset")
	}
}

func TestCellEscapesName(t *testing.T) {
	cfg := NewConfig[string]()
	cfg.Thumbs.DrawBox = false
	cfg.Name = func(s string) string { return s }

	out := Format([]string{`<b>"x"</b>`}, cfg)

	if strings.Contains(out, "<b>") {
		t.Errorf("name text should be escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("expected escaped name in %q", out)
	}
}

func TestCellRenderEntityVerbatim(t *testing.T) {
	cfg := NewConfig[string]()
	cfg.RenderEntity = func(s string) string { return "<b>" + s + "</b>" }
	// Other callbacks are ignored when RenderEntity is set.
	cfg.Name = func(s string) string { return "ignored" }
	cfg.ThumbnailFile = func(s string) string { return "ignored.png" }

	out := Format([]string{"X"}, cfg)

	if !strings.Contains(out, "<b>X</b>") {
		t.Errorf("expected verbatim cell body in %q", out)
	}
	if strings.Contains(out, "ignored") {
		t.Errorf("extractor callbacks should be ignored, got %q", out)
	}
}
