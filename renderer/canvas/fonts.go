package canvasrenderer

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vellum/fonts"
	"github.com/ByLCY/vellum/scene"
)

// fontCache loads each (name, src, style) once. A font that fails to load is
// replaced by the built-in default and the failure is logged once.
type fontCache struct {
	baseDir string
	log     logrus.FieldLogger

	mu       sync.Mutex
	families map[string]cachedFamily
	fallback *canvas.FontFamily
}

type cachedFamily struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

func newFontCache(baseDir string, log logrus.FieldLogger) *fontCache {
	return &fontCache{baseDir: baseDir, log: log, families: map[string]cachedFamily{}}
}

// face returns a face of font at sizePt points.
func (fc *fontCache) face(font scene.FontSpec, sizePt float64, col color.Color) (*canvas.FontFace, error) {
	f, err := fc.family(font)
	if err != nil {
		return nil, err
	}
	return f.family.Face(sizePt, col, f.style, canvas.FontNormal), nil
}

func (fc *fontCache) family(font scene.FontSpec) (cachedFamily, error) {
	key := font.Name + "|" + font.Src + "|" + font.Style
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if f, ok := fc.families[key]; ok {
		return f, nil
	}

	name := font.Name
	if name == "" {
		name = "Body"
	}
	f := cachedFamily{family: canvas.NewFontFamily(name), style: parseFontStyle(font.Style)}
	err := fc.load(f.family, font.Src, f.style)
	if err != nil {
		fallback, fbErr := fc.defaultFamily()
		if fbErr != nil {
			return cachedFamily{}, err
		}
		fc.log.WithError(err).WithField("font", font.Name).Warn("字体加载失败，使用内置字体")
		f = cachedFamily{family: fallback, style: canvas.FontRegular}
	}
	fc.families[key] = f
	return f, nil
}

func (fc *fontCache) load(family *canvas.FontFamily, src string, style canvas.FontStyle) error {
	data, err := fc.read(src)
	if err != nil {
		return err
	}
	if err := family.LoadFont(data, 0, style); err != nil {
		return fmt.Errorf("加载字体 %s 失败: %w", src, err)
	}
	return nil
}

// read resolves builtin:NAME and file paths. Relative paths need a base
// directory.
func (fc *fontCache) read(src string) ([]byte, error) {
	if fonts.IsBuiltin(src) {
		return fonts.Load(src)
	}
	path := src
	if !filepath.IsAbs(path) {
		if fc.baseDir == "" {
			return nil, fmt.Errorf("未指定资源目录时不允许直接使用字体路径：%s（请改用 builtin:）", src)
		}
		path = filepath.Join(fc.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}

// defaultFamily is called with mu held.
func (fc *fontCache) defaultFamily() (*canvas.FontFamily, error) {
	if fc.fallback != nil {
		return fc.fallback, nil
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("vellum-default")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	fc.fallback = family
	return family, nil
}

// weights is checked in order, so "extrabold" must precede "bold".
var weights = []struct {
	word  string
	style canvas.FontStyle
}{
	{"black", canvas.FontBlack},
	{"extrabold", canvas.FontExtraBold},
	{"semibold", canvas.FontSemiBold},
	{"demibold", canvas.FontSemiBold},
	{"bold", canvas.FontBold},
	{"medium", canvas.FontMedium},
	{"extralight", canvas.FontExtraLight},
	{"light", canvas.FontLight},
	{"thin", canvas.FontThin},
}

// parseFontStyle maps names like "Bold Italic" or "semibold" to a style.
func parseFontStyle(style string) canvas.FontStyle {
	s := strings.ToLower(style)
	result := canvas.FontRegular
	for _, w := range weights {
		if strings.Contains(s, w.word) {
			result = w.style
			break
		}
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}
