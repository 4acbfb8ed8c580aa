package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

// Email signature composer. The document model lives here as pure data
// plus pure render functions; handlers in tools.go rebuild it from the
// posted form on every interaction.

type fieldName string

const (
	fieldNameField fieldName = "name"
	fieldRole      fieldName = "role"
	fieldCompany   fieldName = "company"
	fieldCountry   fieldName = "country"
	fieldPhone     fieldName = "phone"
	fieldEmail     fieldName = "email"
	fieldWebsite   fieldName = "website"
	fieldLinkedIn  fieldName = "linkedin"
	fieldGitHub    fieldName = "github"
	fieldWhatsApp  fieldName = "whatsapp"
	fieldImage     fieldName = "image"
)

// defaultFieldOrder is the full field enumeration; fieldOrder is always a
// permutation of it.
var defaultFieldOrder = []fieldName{
	fieldNameField, fieldRole, fieldCompany, fieldCountry, fieldPhone,
	fieldEmail, fieldWebsite, fieldLinkedIn, fieldGitHub, fieldWhatsApp,
	fieldImage,
}

var socialFields = map[fieldName]bool{
	fieldLinkedIn: true,
	fieldGitHub:   true,
	fieldWhatsApp: true,
}

// styledFields are the textual fields carrying bold/italic/underline flags.
var styledFields = []fieldName{
	fieldNameField, fieldRole, fieldCompany, fieldCountry, fieldPhone,
	fieldEmail, fieldWebsite,
}

type textStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
}

type signatureStyles struct {
	PrimaryColor      string
	TextColor         string
	FontSize          int
	ImageRadius       int
	IconSize          int
	SocialIconSpacing int
	Text              map[fieldName]textStyle
}

type signatureTemplate string

const (
	templateClassic signatureTemplate = "classic"
	templateModern  signatureTemplate = "modern"
	templateCompact signatureTemplate = "compact"
)

type signatureDoc struct {
	Fields   map[fieldName]string
	Order    []fieldName
	Styles   signatureStyles
	Template signatureTemplate
}

func defaultSignature() signatureDoc {
	return signatureDoc{
		Fields: map[fieldName]string{
			fieldNameField: "Leon Matias",
			fieldRole:      "Senior Full Stack Developer",
			fieldCompany:   "Your Company",
			fieldCountry:   "United States",
			fieldPhone:     "123456789",
			fieldEmail:     "your.email@example.com",
			fieldWebsite:   "yourwebsite.com",
			fieldLinkedIn:  "https://www.linkedin.com/in/leon-matias/",
			fieldGitHub:    "https://github.com/leon-matias",
			fieldWhatsApp:  "",
			fieldImage:     "https://avatars.githubusercontent.com/u/10000",
		},
		Order: append([]fieldName(nil), defaultFieldOrder...),
		Styles: signatureStyles{
			PrimaryColor:      "#000000",
			TextColor:         "#333333",
			FontSize:          12,
			ImageRadius:       50,
			IconSize:          24,
			SocialIconSpacing: 10,
			Text: map[fieldName]textStyle{
				fieldNameField: {Bold: true},
				fieldRole:      {},
				fieldCompany:   {},
				fieldCountry:   {},
				fieldPhone:     {},
				fieldEmail:     {},
				fieldWebsite:   {},
			},
		},
		Template: templateClassic,
	}
}

// FieldValue and TextStyleOf exist for the templates, which index with
// plain strings.
func (d signatureDoc) FieldValue(name string) string {
	return d.Fields[fieldName(name)]
}

func (d signatureDoc) TextStyleOf(name string) textStyle {
	return d.Styles.Text[fieldName(name)]
}

// OrderStrings returns the field order as strings for the reorder controls.
func (d signatureDoc) OrderStrings() []string {
	out := make([]string, len(d.Order))
	for i, f := range d.Order {
		out[i] = string(f)
	}
	return out
}

func (d signatureDoc) TemplateName() string { return string(d.Template) }

// StyledFieldNames lists the fields carrying text-style toggles, as strings.
func (d signatureDoc) StyledFieldNames() []string {
	out := make([]string, len(styledFields))
	for i, f := range styledFields {
		out[i] = string(f)
	}
	return out
}

// moveField swaps the field at index with its up/down neighbor. A move
// that would leave the list, or any direction other than up/down, is a
// silent no-op.
func (d *signatureDoc) moveField(index int, direction string) {
	var target int
	switch direction {
	case "up":
		target = index - 1
	case "down":
		target = index + 1
	default:
		return
	}
	if index < 0 || index >= len(d.Order) || target < 0 || target >= len(d.Order) {
		return
	}
	d.Order[index], d.Order[target] = d.Order[target], d.Order[index]
}

// phoneDisplay composes "+<calling code><digits>" from the country field.
func (d *signatureDoc) phoneDisplay() string {
	return composePhone(d.Fields[fieldCountry], d.Fields[fieldPhone])
}

func (d *signatureDoc) textStyleCSS(f fieldName) string {
	ts := d.Styles.Text[f]
	weight, style, deco := "normal", "normal", "none"
	if ts.Bold {
		weight = "bold"
	}
	if ts.Italic {
		style = "italic"
	}
	if ts.Underline {
		deco = "underline"
	}
	return fmt.Sprintf("font-weight:%s;font-style:%s;text-decoration:%s", weight, style, deco)
}

func esc(s string) string { return template.HTMLEscapeString(s) }

// iconURL builds an icons8 glyph tinted with the given color, matching
// the icons the exported signature embeds.
func iconURL(name, color string) string {
	return "https://img.icons8.com/ios-filled/50/" + strings.TrimPrefix(color, "#") + "/" + name + ".png"
}

const contactIconSize = 14

type fieldRenderer func(d *signatureDoc, b *strings.Builder)

// fieldRenderers maps every field to its renderer so a new field cannot
// be added without deciding how it renders. Nil entries render nothing
// on their own: company renders inside the role line, image inside the
// template frame, social fields inside the combined icon row.
var fieldRenderers = map[fieldName]fieldRenderer{
	fieldNameField: renderName,
	fieldRole:      renderRole,
	fieldCompany:   nil,
	fieldCountry:   renderCountry,
	fieldPhone:     renderPhone,
	fieldEmail:     renderEmail,
	fieldWebsite:   renderWebsite,
	fieldLinkedIn:  nil,
	fieldGitHub:    nil,
	fieldWhatsApp:  nil,
	fieldImage:     nil,
}

func renderName(d *signatureDoc, b *strings.Builder) {
	fmt.Fprintf(b, `<p style="margin:0;font-size:16px;color:%s;%s">%s</p>`,
		esc(d.Styles.PrimaryColor), d.textStyleCSS(fieldNameField), esc(d.Fields[fieldNameField]))
}

func renderRole(d *signatureDoc, b *strings.Builder) {
	fmt.Fprintf(b, `<p style="margin:2px 0;%s">%s | <span style="%s">%s</span></p>`,
		d.textStyleCSS(fieldRole), esc(d.Fields[fieldRole]),
		d.textStyleCSS(fieldCompany), esc(d.Fields[fieldCompany]))
}

func renderCountry(d *signatureDoc, b *strings.Builder) {
	fmt.Fprintf(b, `<p style="margin:2px 0;%s"><img src="%s" alt="Location" width="%d" height="%d" style="display:inline-block;vertical-align:middle"> <span>%s</span></p>`,
		d.textStyleCSS(fieldCountry), iconURL("marker", d.Styles.PrimaryColor),
		contactIconSize, contactIconSize, esc(d.Fields[fieldCountry]))
}

func renderPhone(d *signatureDoc, b *strings.Builder) {
	fmt.Fprintf(b, `<p style="margin:2px 0"><img src="%s" alt="Phone" width="%d" height="%d" style="display:inline-block;vertical-align:middle"> <span style="%s">%s</span></p>`,
		iconURL("phone", d.Styles.PrimaryColor), contactIconSize, contactIconSize,
		d.textStyleCSS(fieldPhone), esc(d.phoneDisplay()))
}

func renderEmail(d *signatureDoc, b *strings.Builder) {
	email := esc(d.Fields[fieldEmail])
	fmt.Fprintf(b, `<p style="margin:2px 0"><img src="%s" alt="Email" width="%d" height="%d" style="display:inline-block;vertical-align:middle"> <span style="%s"><a href="mailto:%s" style="color:%s;text-decoration:none">%s</a></span></p>`,
		iconURL("mail", d.Styles.PrimaryColor), contactIconSize, contactIconSize,
		d.textStyleCSS(fieldEmail), email, esc(d.Styles.PrimaryColor), email)
}

// websiteDisplay truncates long URLs for display only. Counts runes so a
// multi-byte character is never split.
func websiteDisplay(site string) string {
	runes := []rune(site)
	if len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return site
}

func websiteHref(site string) string {
	if strings.HasPrefix(site, "http") {
		return site
	}
	return "http://" + site
}

func renderWebsite(d *signatureDoc, b *strings.Builder) {
	site := d.Fields[fieldWebsite]
	fmt.Fprintf(b, `<p style="margin:2px 0;%s"><img src="%s" alt="Website" width="%d" height="%d" style="display:inline-block;vertical-align:middle"> <a href="%s" style="color:%s;text-decoration:none">%s</a></p>`,
		d.textStyleCSS(fieldWebsite), iconURL("globe", d.Styles.PrimaryColor),
		contactIconSize, contactIconSize, esc(websiteHref(site)),
		esc(d.Styles.PrimaryColor), esc(websiteDisplay(site)))
}

func (d *signatureDoc) hasSocialValue() bool {
	return d.Fields[fieldLinkedIn] != "" || d.Fields[fieldGitHub] != "" || d.Fields[fieldWhatsApp] != ""
}

// renderSocialRow writes the single combined icon row. Icon order inside
// the row is fixed regardless of field order.
func (d *signatureDoc) renderSocialRow(b *strings.Builder) {
	type socialIcon struct {
		href, img, alt string
	}
	var icons []socialIcon
	if v := d.Fields[fieldLinkedIn]; v != "" {
		icons = append(icons, socialIcon{v, "https://img.icons8.com/ios-filled/50/0077B5/linkedin.png", "LinkedIn"})
	}
	if v := d.Fields[fieldGitHub]; v != "" {
		icons = append(icons, socialIcon{v, "https://img.icons8.com/ios-filled/50/000000/github.png", "GitHub"})
	}
	if v := d.Fields[fieldWhatsApp]; v != "" {
		icons = append(icons, socialIcon{"https://wa.me/" + v, "https://img.icons8.com/ios-filled/50/25D366/whatsapp.png", "WhatsApp"})
	}

	b.WriteString(`<table cellpadding="0" cellspacing="0" style="border-collapse:collapse;margin-top:5px"><tr>`)
	for i, ic := range icons {
		spacing := d.Styles.SocialIconSpacing
		if i == len(icons)-1 {
			spacing = 0
		}
		fmt.Fprintf(b, `<td style="padding-right:%dpx"><a href="%s" style="text-decoration:none;display:inline-block"><img src="%s" alt="%s" width="%d" height="%d" style="display:block"></a></td>`,
			spacing, esc(ic.href), ic.img, ic.alt, d.Styles.IconSize, d.Styles.IconSize)
	}
	b.WriteString(`</tr></table>`)
}

// renderFields walks the field order, skipping empty values, collapsing
// the social fields into one combined row at the position of the first
// social field with a non-empty value.
func (d *signatureDoc) renderFields(b *strings.Builder) {
	socialDone := false
	for _, f := range d.Order {
		if socialFields[f] {
			if socialDone || !d.hasSocialValue() {
				continue
			}
			d.renderSocialRow(b)
			socialDone = true
			continue
		}
		if d.Fields[f] == "" {
			continue
		}
		if fn := fieldRenderers[f]; fn != nil {
			fn(d, b)
		}
	}
}

// RenderHTML produces the self-contained signature markup for the chosen
// template. Same input, same output: the preview, the clipboard export
// and the golden tests all go through here.
func (d *signatureDoc) RenderHTML() string {
	var fields strings.Builder
	d.renderFields(&fields)

	var b strings.Builder
	switch d.Template {
	case templateModern:
		fmt.Fprintf(&b, `<table cellpadding="0" cellspacing="0" style="border-collapse:collapse;font-size:%dpx;color:%s;font-family:Arial, sans-serif"><tr>`,
			d.Styles.FontSize, esc(d.Styles.TextColor))
		if img := d.Fields[fieldImage]; img != "" {
			fmt.Fprintf(&b, `<td style="padding-right:15px;vertical-align:top"><img src="%s" alt="Profile" width="90" style="border-radius:%d%%;border:2px solid %s"></td>`,
				esc(img), d.Styles.ImageRadius, esc(d.Styles.PrimaryColor))
		}
		fmt.Fprintf(&b, `<td style="vertical-align:top">%s<hr style="border:none;border-top:1px solid %s;margin:8px 0"></td></tr></table>`,
			fields.String(), esc(d.Styles.PrimaryColor))
	case templateCompact:
		fmt.Fprintf(&b, `<table cellpadding="0" cellspacing="0" style="border-collapse:collapse;font-size:%dpx;color:%s;%s;font-family:Arial, sans-serif"><tr><td style="vertical-align:middle">%s</td></tr></table>`,
			d.Styles.FontSize, esc(d.Styles.TextColor), d.textStyleCSS(fieldNameField), fields.String())
	default: // classic
		fmt.Fprintf(&b, `<table cellpadding="0" cellspacing="0" style="border-collapse:collapse;font-size:%dpx;color:%s;font-family:Arial, sans-serif"><tr>`,
			d.Styles.FontSize, esc(d.Styles.TextColor))
		if img := d.Fields[fieldImage]; img != "" {
			fmt.Fprintf(&b, `<td style="padding-right:10px"><img src="%s" alt="Profile" width="80" style="border-radius:%d%%"></td>`,
				esc(img), d.Styles.ImageRadius)
		}
		fmt.Fprintf(&b, `<td style="border-left:1px solid %s;padding-left:10px">%s</td></tr></table>`,
			esc(d.Styles.PrimaryColor), fields.String())
	}
	return b.String()
}

// RenderText is the plain-text sibling of RenderHTML: the same field
// order and skip rules, icons and avatar dropped.
func (d *signatureDoc) RenderText() string {
	var lines []string
	for _, f := range d.Order {
		if socialFields[f] || f == fieldImage || f == fieldCompany {
			continue
		}
		v := d.Fields[f]
		if v == "" {
			continue
		}
		switch f {
		case fieldRole:
			line := v
			if company := d.Fields[fieldCompany]; company != "" {
				line += " | " + company
			}
			lines = append(lines, line)
		case fieldPhone:
			lines = append(lines, d.phoneDisplay())
		case fieldWebsite:
			lines = append(lines, websiteDisplay(v))
		default:
			lines = append(lines, v)
		}
	}
	return strings.Join(lines, "\n")
}

const (
	avatarMaxSize     = 150
	avatarJPEGQuality = 70
)

// resizeAvatar decodes an uploaded image, shrinks it so neither dimension
// exceeds 150px and re-encodes it as JPEG, returning a data URI the
// signature can embed without remote fetches.
func resizeAvatar(r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > avatarMaxSize || bounds.Dy() > avatarMaxSize {
		img = imaging.Fit(img, avatarMaxSize, avatarMaxSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(avatarJPEGQuality)); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// parseSignatureForm rebuilds the document from the posted tool form,
// falling back to defaults for anything missing or malformed.
func parseSignatureForm(c *gin.Context) signatureDoc {
	d := defaultSignature()

	for _, f := range defaultFieldOrder {
		if v, ok := c.GetPostForm("f_" + string(f)); ok {
			d.Fields[f] = v
		}
	}

	if order, ok := parseFieldOrder(c.PostForm("order")); ok {
		d.Order = order
	}

	switch t := signatureTemplate(c.PostForm("template")); t {
	case templateClassic, templateModern, templateCompact:
		d.Template = t
	}

	if v := c.PostForm("s_primary"); v != "" {
		d.Styles.PrimaryColor = v
	}
	if v := c.PostForm("s_text"); v != "" {
		d.Styles.TextColor = v
	}
	d.Styles.FontSize = intInRange(c.PostForm("s_fontsize"), d.Styles.FontSize, 8, 24)
	d.Styles.ImageRadius = intInRange(c.PostForm("s_radius"), d.Styles.ImageRadius, 0, 50)
	d.Styles.IconSize = intInRange(c.PostForm("s_iconsize"), d.Styles.IconSize, 8, 48)
	d.Styles.SocialIconSpacing = intInRange(c.PostForm("s_spacing"), d.Styles.SocialIconSpacing, 0, 50)

	for _, f := range styledFields {
		d.Styles.Text[f] = textStyle{
			Bold:      c.PostForm("ts_"+string(f)+"_b") != "",
			Italic:    c.PostForm("ts_"+string(f)+"_i") != "",
			Underline: c.PostForm("ts_"+string(f)+"_u") != "",
		}
	}
	return d
}

// parseFieldOrder accepts a comma-separated order only when it is a
// permutation of the full field enumeration.
func parseFieldOrder(s string) ([]fieldName, bool) {
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, ",")
	if len(parts) != len(defaultFieldOrder) {
		return nil, false
	}
	seen := map[fieldName]bool{}
	order := make([]fieldName, 0, len(parts))
	for _, p := range parts {
		f := fieldName(strings.TrimSpace(p))
		if _, known := fieldRenderers[f]; !known || seen[f] {
			return nil, false
		}
		seen[f] = true
		order = append(order, f)
	}
	return order, true
}

func intInRange(s string, def, min, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}
