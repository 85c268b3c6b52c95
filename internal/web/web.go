package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"reflect"
	"strings"

	"imagecraft/internal/domain"
	"imagecraft/internal/i18n"
)

//go:embed templates/index.html static
var assets embed.FS

// Renderer renders the single page UI and serves its static assets.
type Renderer struct {
	index  *template.Template
	static fs.FS
}

type option struct {
	Value string
	Key   string
}

type pageData struct {
	Locale  i18n.Locale
	T       map[string]string
	Bundles map[i18n.Locale]i18n.Bundle
	Masks   []option
	Sizes   []option
	Styles  []option
}

var (
	maskOptions = []option{
		{string(domain.MaskTypeMedical), "mask_medical"},
		{string(domain.MaskTypeFashion), "mask_fashion"},
		{string(domain.MaskTypeCarnival), "mask_carnival"},
		{string(domain.MaskTypeSports), "mask_sports"},
		{string(domain.MaskTypeArtistic), "mask_artistic"},
		{string(domain.MaskTypeCustom), "mask_custom"},
	}
	sizeOptions = []option{
		{string(domain.ImageSizeSquare), "size_square"},
		{string(domain.ImageSizeLandscape), "size_landscape"},
		{string(domain.ImageSizePortrait), "size_portrait"},
	}
	styleOptions = []option{
		{string(domain.ImageStyleRealistic), "style_realistic"},
		{string(domain.ImageStyleArtistic), "style_artistic"},
		{string(domain.ImageStyleCartoon), "style_cartoon"},
		{string(domain.ImageStyleAbstract), "style_abstract"},
	}
)

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(assets, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse index template: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static assets: %w", err)
	}
	return &Renderer{index: tmpl, static: static}, nil
}

// RenderIndex writes the page for locale. Both dictionaries are embedded so
// switching language never hits the server.
func (r *Renderer) RenderIndex(w io.Writer, locale i18n.Locale) error {
	if !locale.Valid() {
		locale = i18n.Default
	}
	bundle := i18n.For(locale)
	data := pageData{
		Locale:  locale,
		T:       messageIndex(bundle.Messages),
		Bundles: i18n.All(),
		Masks:   maskOptions,
		Sizes:   sizeOptions,
		Styles:  styleOptions,
	}
	var buf bytes.Buffer
	if err := r.index.Execute(&buf, data); err != nil {
		return fmt.Errorf("web: render index: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the files under static/ and is meant to be mounted at /static/.
func (r *Renderer) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(r.static)))
}

// messageIndex keys messages by their JSON names so the template and the
// client script share one set of keys.
func messageIndex(m i18n.Messages) map[string]string {
	v := reflect.ValueOf(m)
	t := v.Type()
	out := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		key, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		out[key] = v.Field(i).String()
	}
	return out
}
