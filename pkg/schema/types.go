package schema

// AtomType enumerates the closed set of base atom types.
type AtomType string

const (
	AtomText   AtomType = "text"
	AtomNumber AtomType = "number"
	AtomImage  AtomType = "image"
	AtomIcon   AtomType = "icon"
	AtomVideo  AtomType = "video"
	AtomAudio  AtomType = "audio"
)

// AtomSubtype is a data-format hint within a base type.
type AtomSubtype string

const (
	SubtypeString   AtomSubtype = "string"
	SubtypeDate     AtomSubtype = "date"
	SubtypeDatetime AtomSubtype = "datetime"
	SubtypeURL      AtomSubtype = "url"
	SubtypeEmail    AtomSubtype = "email"
	SubtypePhone    AtomSubtype = "phone"

	SubtypeInt      AtomSubtype = "int"
	SubtypeFloat    AtomSubtype = "float"
	SubtypeCurrency AtomSubtype = "currency"
	SubtypePercent  AtomSubtype = "percent"
	SubtypeRating   AtomSubtype = "rating"

	SubtypeBase64 AtomSubtype = "base64"

	SubtypeIconName  AtomSubtype = "name"
	SubtypeIconEmoji AtomSubtype = "emoji"
	SubtypeIconSVG   AtomSubtype = "svg"
)

// Slot names a placement region within a widget template.
type Slot string

const (
	SlotHero        Slot = "hero"
	SlotBadge       Slot = "badge"
	SlotTitle       Slot = "title"
	SlotPrimary     Slot = "primary"
	SlotPrice       Slot = "price"
	SlotSecondary   Slot = "secondary"
	SlotGallery     Slot = "gallery"
	SlotStock       Slot = "stock"
	SlotDescription Slot = "description"
	SlotTags        Slot = "tags"
	SlotSpecs       Slot = "specs"
)

// Common display tokens. The set is open; renderers degrade unknown tokens to
// plain text instead of rejecting them.
const (
	DisplayH1           = "h1"
	DisplayH2           = "h2"
	DisplayH3           = "h3"
	DisplayH4           = "h4"
	DisplayBodyLg       = "body-lg"
	DisplayBody         = "body"
	DisplayBodySm       = "body-sm"
	DisplayCaption      = "caption"
	DisplayBadge        = "badge"
	DisplayBadgeSuccess = "badge-success"
	DisplayBadgeError   = "badge-error"
	DisplayBadgeWarning = "badge-warning"
	DisplayTag          = "tag"
	DisplayTagActive    = "tag-active"

	DisplayPrice         = "price"
	DisplayPriceLg       = "price-lg"
	DisplayPriceOld      = "price-old"
	DisplayPriceDiscount = "price-discount"
	DisplayRating        = "rating"
	DisplayRatingText    = "rating-text"
	DisplayRatingCompact = "rating-compact"
	DisplayPercent       = "percent"
	DisplayProgress      = "progress"

	DisplayImage      = "image"
	DisplayImageCover = "image-cover"
	DisplayAvatar     = "avatar"
	DisplayAvatarSm   = "avatar-sm"
	DisplayAvatarLg   = "avatar-lg"
	DisplayThumbnail  = "thumbnail"
	DisplayGallery    = "gallery"

	DisplayIcon   = "icon"
	DisplayIconSm = "icon-sm"
	DisplayIconLg = "icon-lg"

	DisplayButtonPrimary   = "button-primary"
	DisplayButtonSecondary = "button-secondary"
	DisplayButtonOutline   = "button-outline"
	DisplayButtonGhost     = "button-ghost"
	DisplayInput           = "input"

	DisplayDivider = "divider"
	DisplaySpacer  = "spacer"
)

// Atom is the smallest renderable unit: one value plus the hints needed to
// choose its visual treatment. Value may be a scalar, an array, or a map;
// interpretation depends on Type and the resolved display. FieldName is only
// populated on template atoms, where Value is stripped.
type Atom struct {
	Type      AtomType       `json:"type"`
	Subtype   AtomSubtype    `json:"subtype,omitempty"`
	Display   string         `json:"display,omitempty"`
	Value     any            `json:"value"`
	FieldName string         `json:"fieldName,omitempty"`
	Slot      Slot           `json:"slot,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// MetaString reads a string-valued meta key, returning "" when absent or not
// a string.
func (a Atom) MetaString(key string) string {
	if a.Meta == nil {
		return ""
	}
	s, _ := a.Meta[key].(string)
	return s
}

// FieldKey is the identifier used for comparison rows and template fills:
// the source field name when present, otherwise the slot.
func (a Atom) FieldKey() string {
	if a.FieldName != "" {
		return a.FieldName
	}
	return string(a.Slot)
}

// Widget template names understood by the card/detail layout engine. A widget
// without a template falls back to legacy per-type rendering.
const (
	TemplateProductCard   = "ProductCard"
	TemplateServiceCard   = "ServiceCard"
	TemplateProductDetail = "ProductDetail"
	TemplateServiceDetail = "ServiceDetail"
)

// WidgetType enumerates legacy widget kinds from the type-keyed generation.
type WidgetType string

const (
	WidgetProductCard  WidgetType = "product_card"
	WidgetTextBlock    WidgetType = "text_block"
	WidgetQuickReplies WidgetType = "quick_replies"
)

// EntityRef binds a widget to the domain entity it represents, enabling
// expand navigation.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Widget is a card: an ordered list of atoms partitioned by slot and laid out
// by a named template.
type Widget struct {
	ID         string         `json:"id"`
	Template   string         `json:"template,omitempty"`
	Size       string         `json:"size,omitempty"`
	Priority   int            `json:"priority,omitempty"`
	Atoms      []Atom         `json:"atoms"`
	EntityRef  *EntityRef     `json:"entityRef,omitempty"`
	LegacyType WidgetType     `json:"type,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// FormationMode selects the page-level layout.
type FormationMode string

const (
	ModeGrid       FormationMode = "grid"
	ModeList       FormationMode = "list"
	ModeCarousel   FormationMode = "carousel"
	ModeSingle     FormationMode = "single"
	ModeComparison FormationMode = "comparison"
)

// GridConfig sizes a grid-mode formation.
type GridConfig struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Formation is a page of widgets. An empty formation renders nothing; it is a
// "no result", not an error.
type Formation struct {
	Mode       FormationMode `json:"mode"`
	Grid       *GridConfig   `json:"grid,omitempty"`
	Widgets    []Widget      `json:"widgets"`
	LegacyMode FormationMode `json:"type,omitempty"`
}

// Empty reports whether the formation has nothing to paint.
func (f *Formation) Empty() bool {
	return f == nil || len(f.Widgets) == 0
}
