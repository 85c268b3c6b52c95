package domain

import "time"

// MaskType enumerates the kinds of face covering a generated portrait depicts.
type MaskType string

const (
	MaskTypeMedical  MaskType = "medical"
	MaskTypeFashion  MaskType = "fashion"
	MaskTypeCarnival MaskType = "carnival"
	MaskTypeSports   MaskType = "sports"
	MaskTypeArtistic MaskType = "artistic"
	MaskTypeCustom   MaskType = "custom"
)

// ImageSize enumerates the output dimensions supported by the generator.
type ImageSize string

const (
	ImageSizeSquare    ImageSize = "1024x1024"
	ImageSizeLandscape ImageSize = "1792x1024"
	ImageSizePortrait  ImageSize = "1024x1792"
)

// ImageStyle enumerates the art styles a prompt can be rendered in.
type ImageStyle string

const (
	ImageStyleRealistic ImageStyle = "realistic"
	ImageStyleArtistic  ImageStyle = "artistic"
	ImageStyleCartoon   ImageStyle = "cartoon"
	ImageStyleAbstract  ImageStyle = "abstract"
)

const (
	// DefaultImageSize is applied when a request or insert omits the size.
	DefaultImageSize = ImageSizeSquare
	// DefaultImageStyle is applied when a request or insert omits the style.
	DefaultImageStyle = ImageStyleRealistic
)

// MaskTypes lists every supported mask type in display order.
var MaskTypes = []MaskType{
	MaskTypeMedical,
	MaskTypeFashion,
	MaskTypeCarnival,
	MaskTypeSports,
	MaskTypeArtistic,
	MaskTypeCustom,
}

// ImageSizes lists every supported size in display order.
var ImageSizes = []ImageSize{ImageSizeSquare, ImageSizeLandscape, ImageSizePortrait}

// ImageStyles lists every supported style in display order.
var ImageStyles = []ImageStyle{ImageStyleRealistic, ImageStyleArtistic, ImageStyleCartoon, ImageStyleAbstract}

// Valid reports whether m is a known mask type.
func (m MaskType) Valid() bool {
	for _, v := range MaskTypes {
		if v == m {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known size.
func (s ImageSize) Valid() bool {
	for _, v := range ImageSizes {
		if v == s {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known style.
func (s ImageStyle) Valid() bool {
	for _, v := range ImageStyles {
		if v == s {
			return true
		}
	}
	return false
}

// GeneratedImage is the persisted result of one successful generation call.
type GeneratedImage struct {
	ID        int64      `json:"id"`
	Prompt    string     `json:"prompt"`
	MaskType  MaskType   `json:"maskType"`
	ImageURL  string     `json:"imageUrl"`
	Size      ImageSize  `json:"size"`
	Style     ImageStyle `json:"style"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewImage carries the fields supplied on insert; the store assigns the rest.
type NewImage struct {
	Prompt   string
	MaskType MaskType
	ImageURL string
	Size     ImageSize
	Style    ImageStyle
}
