package i18n

// Messages is the UI dictionary for one locale.
type Messages struct {
	AppTitle         string `json:"app_title"`
	AppSubtitle      string `json:"app_subtitle"`
	PromptTitle      string `json:"prompt_title"`
	PromptLabel      string `json:"prompt_label"`
	PromptHint       string `json:"prompt_placeholder"`
	MaskType         string `json:"mask_type"`
	MaskMedical      string `json:"mask_medical"`
	MaskFashion      string `json:"mask_fashion"`
	MaskCarnival     string `json:"mask_carnival"`
	MaskSports       string `json:"mask_sports"`
	MaskArtistic     string `json:"mask_artistic"`
	MaskCustom       string `json:"mask_custom"`
	AdvancedOptions  string `json:"advanced_options"`
	ImageSize        string `json:"image_size"`
	SizeSquare       string `json:"size_square"`
	SizeLandscape    string `json:"size_landscape"`
	SizePortrait     string `json:"size_portrait"`
	ImageStyle       string `json:"image_style"`
	StyleRealistic   string `json:"style_realistic"`
	StyleArtistic    string `json:"style_artistic"`
	StyleCartoon     string `json:"style_cartoon"`
	StyleAbstract    string `json:"style_abstract"`
	GenerateButton   string `json:"generate_button"`
	SuggestionsTitle string `json:"suggestions_title"`
	TipsTitle        string `json:"tips_title"`
	GalleryTitle     string `json:"gallery_title"`
	GridView         string `json:"grid_view"`
	ListView         string `json:"list_view"`
	Generating       string `json:"generating"`
	GeneratingDesc   string `json:"generating_desc"`
	NoImages         string `json:"no_images"`
	NoImagesDesc     string `json:"no_images_desc"`
	StartCreating    string `json:"start_creating"`
	ImageDetails     string `json:"image_details"`
	Created          string `json:"created"`
	Download         string `json:"download"`
	Share            string `json:"share"`
	Delete           string `json:"delete"`
	Close            string `json:"close"`
	LinkCopied       string `json:"link_copied"`
	Deleted          string `json:"deleted"`
	ErrorOccurred    string `json:"error_occurred"`
	SuccessGenerated string `json:"success_generated"`
	Language         string `json:"language"`
}

// Bundle is everything the UI needs for one locale.
type Bundle struct {
	Locale      Locale   `json:"locale"`
	Messages    Messages `json:"messages"`
	Suggestions []string `json:"suggestions"`
	Tips        []string `json:"tips"`
}

var bundles = map[Locale]Bundle{
	Spanish: {
		Locale: Spanish,
		Messages: Messages{
			AppTitle:         "ImageCraft",
			AppSubtitle:      "Retratos con máscara generados por IA",
			PromptTitle:      "Describe tu imagen",
			PromptLabel:      "Descripción de la imagen",
			PromptHint:       "Ej: Doctora joven sonriendo con máscara médica azul, fondo limpio, expresión amigable...",
			MaskType:         "Tipo de máscara",
			MaskMedical:      "Médica",
			MaskFashion:      "Moda",
			MaskCarnival:     "Carnaval",
			MaskSports:       "Deportiva",
			MaskArtistic:     "Artística",
			MaskCustom:       "Personalizada",
			AdvancedOptions:  "Opciones avanzadas",
			ImageSize:        "Tamaño de imagen",
			SizeSquare:       "1024x1024 (Cuadrada)",
			SizeLandscape:    "1792x1024 (Horizontal)",
			SizePortrait:     "1024x1792 (Vertical)",
			ImageStyle:       "Estilo artístico",
			StyleRealistic:   "Realista",
			StyleArtistic:    "Artístico",
			StyleCartoon:     "Caricatura",
			StyleAbstract:    "Abstracto",
			GenerateButton:   "Generar Imagen",
			SuggestionsTitle: "Sugerencias rápidas",
			TipsTitle:        "Consejos para mejores resultados:",
			GalleryTitle:     "Imágenes Generadas",
			GridView:         "Cuadrícula",
			ListView:         "Lista",
			Generating:       "Generando imagen...",
			GeneratingDesc:   "Esto puede tomar unos segundos",
			NoImages:         "No hay imágenes aún",
			NoImagesDesc:     "Comienza describiendo la imagen que quieres generar en el panel de la izquierda",
			StartCreating:    "Comenzar a crear",
			ImageDetails:     "Detalles de la imagen",
			Created:          "Creada",
			Download:         "Descargar",
			Share:            "Compartir",
			Delete:           "Eliminar",
			Close:            "Cerrar",
			LinkCopied:       "Enlace copiado al portapapeles",
			Deleted:          "Imagen eliminada",
			ErrorOccurred:    "Ocurrió un error",
			SuccessGenerated: "¡Imagen generada exitosamente!",
			Language:         "Idioma",
		},
		Suggestions: []string{
			"Doctora joven sonriendo con máscara médica azul",
			"Persona elegante con máscara de seda negra",
			"Niño feliz con máscara colorida de superhéroe",
			"Artista con máscara veneciana dorada",
			"Deportista con máscara deportiva moderna",
			"Persona amigable con máscara personalizada",
		},
		Tips: []string{
			"Describe personas de manera positiva y amigable",
			"Incluye detalles sobre expresión y ambiente",
			"Evita contenido violento o inapropiado",
		},
	},
	English: {
		Locale: English,
		Messages: Messages{
			AppTitle:         "ImageCraft",
			AppSubtitle:      "AI generated mask portraits",
			PromptTitle:      "Describe your image",
			PromptLabel:      "Image description",
			PromptHint:       "E.g: Young doctor smiling with blue medical mask, clean background, friendly expression...",
			MaskType:         "Mask type",
			MaskMedical:      "Medical",
			MaskFashion:      "Fashion",
			MaskCarnival:     "Carnival",
			MaskSports:       "Sports",
			MaskArtistic:     "Artistic",
			MaskCustom:       "Custom",
			AdvancedOptions:  "Advanced options",
			ImageSize:        "Image size",
			SizeSquare:       "1024x1024 (Square)",
			SizeLandscape:    "1792x1024 (Landscape)",
			SizePortrait:     "1024x1792 (Portrait)",
			ImageStyle:       "Art style",
			StyleRealistic:   "Realistic",
			StyleArtistic:    "Artistic",
			StyleCartoon:     "Cartoon",
			StyleAbstract:    "Abstract",
			GenerateButton:   "Generate Image",
			SuggestionsTitle: "Quick suggestions",
			TipsTitle:        "Tips for better results:",
			GalleryTitle:     "Generated Images",
			GridView:         "Grid",
			ListView:         "List",
			Generating:       "Generating image...",
			GeneratingDesc:   "This may take a few seconds",
			NoImages:         "No images yet",
			NoImagesDesc:     "Start by describing the image you want to generate in the left panel",
			StartCreating:    "Start creating",
			ImageDetails:     "Image details",
			Created:          "Created",
			Download:         "Download",
			Share:            "Share",
			Delete:           "Delete",
			Close:            "Close",
			LinkCopied:       "Link copied to clipboard",
			Deleted:          "Image deleted",
			ErrorOccurred:    "An error occurred",
			SuccessGenerated: "Image generated successfully!",
			Language:         "Language",
		},
		Suggestions: []string{
			"Young doctor smiling with blue medical mask",
			"Elegant person with black silk fashion mask",
			"Happy child with colorful superhero mask",
			"Artist with golden venetian mask",
			"Athlete with modern sports mask",
			"Friendly person with custom designed mask",
		},
		Tips: []string{
			"Describe people in positive and friendly ways",
			"Include details about expression and environment",
			"Avoid violent or inappropriate content",
		},
	},
}

// For returns the bundle for l, falling back to Default for unsupported
// locales. Slices are copied so callers cannot mutate the dictionary.
func For(l Locale) Bundle {
	b, ok := bundles[l]
	if !ok {
		b = bundles[Default]
	}
	b.Suggestions = append([]string(nil), b.Suggestions...)
	b.Tips = append([]string(nil), b.Tips...)
	return b
}

// All returns every bundle keyed by locale.
func All() map[Locale]Bundle {
	out := make(map[Locale]Bundle, len(bundles))
	for _, l := range Supported {
		out[l] = For(l)
	}
	return out
}
