package domain

// MediaItem represents one entry of the trending feed.
// Items are constructed by decoding the provider response and are
// never mutated afterwards; a newer fetch replaces them wholesale.
type MediaItem struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Images ImageSet `json:"images"`
}

// ImageSet holds the renditions modeled for a media item.
// The provider ships many more variants; only these two are consumed.
type ImageSet struct {
	Original   ImageVariant `json:"original"`
	FixedWidth ImageVariant `json:"fixed_width"`
}

// ImageVariant describes a single rendition of an item's image.
// Width and height are kept as the numeric strings the provider
// sends; nothing in this core does arithmetic on them.
type ImageVariant struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
}
