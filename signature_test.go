package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveFieldSwapsNeighbors(t *testing.T) {
	d := defaultSignature()
	original := append([]fieldName(nil), d.Order...)

	d.moveField(1, "up")
	assert.Equal(t, original[1], d.Order[0])
	assert.Equal(t, original[0], d.Order[1])

	d.moveField(0, "down")
	assert.Equal(t, original, d.Order)
}

func TestMoveFieldOutOfRangeIsNoop(t *testing.T) {
	d := defaultSignature()
	original := append([]fieldName(nil), d.Order...)

	d.moveField(0, "up")
	d.moveField(len(d.Order)-1, "down")
	d.moveField(-1, "up")
	d.moveField(len(d.Order), "down")
	d.moveField(2, "sideways")

	assert.Equal(t, original, d.Order)
}

func TestRenderHTMLIsDeterministic(t *testing.T) {
	d := defaultSignature()
	first := d.RenderHTML()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, d.RenderHTML())
	}
}

func TestRenderHTMLCollapsesSocialsIntoOneRow(t *testing.T) {
	d := defaultSignature()
	d.Fields[fieldLinkedIn] = "https://linkedin.com/in/someone"
	d.Fields[fieldGitHub] = "https://github.com/someone"
	d.Fields[fieldWhatsApp] = "51933166559"

	html := d.RenderHTML()
	assert.Equal(t, 1, strings.Count(html, "linkedin.png"))
	assert.Equal(t, 1, strings.Count(html, "github.png"))
	assert.Equal(t, 1, strings.Count(html, "whatsapp.png"))

	// Fixed icon order regardless of field order.
	li := strings.Index(html, "linkedin.png")
	gh := strings.Index(html, "github.png")
	wa := strings.Index(html, "whatsapp.png")
	assert.Less(t, li, gh)
	assert.Less(t, gh, wa)

	// The WhatsApp icon links through wa.me.
	assert.Contains(t, html, `href="https://wa.me/51933166559"`)
}

func TestRenderHTMLSkipsEmptyFields(t *testing.T) {
	d := defaultSignature()
	d.Fields[fieldWebsite] = ""
	d.Fields[fieldLinkedIn] = ""
	d.Fields[fieldGitHub] = ""
	d.Fields[fieldWhatsApp] = ""

	html := d.RenderHTML()
	assert.NotContains(t, html, "globe.png")
	assert.NotContains(t, html, "linkedin.png")
}

func TestRenderHTMLOmitsAvatarCellWhenImageEmpty(t *testing.T) {
	d := defaultSignature()
	d.Fields[fieldImage] = ""
	assert.NotContains(t, d.RenderHTML(), `alt="Profile"`)
}

func TestRenderHTMLEscapesFieldValues(t *testing.T) {
	d := defaultSignature()
	d.Fields[fieldNameField] = `<script>alert("x")</script>`
	html := d.RenderHTML()
	assert.NotContains(t, html, "<script>")
}

func TestRenderHTMLTemplates(t *testing.T) {
	d := defaultSignature()

	d.Template = templateModern
	assert.Contains(t, d.RenderHTML(), "<hr")

	d.Template = templateCompact
	assert.NotContains(t, d.RenderHTML(), "<hr")

	d.Template = templateClassic
	assert.Contains(t, d.RenderHTML(), "border-left:1px solid")
}

func TestRenderTextMirrorsOrderAndSkips(t *testing.T) {
	d := defaultSignature()
	d.Fields[fieldNameField] = "Leon Matias"
	d.Fields[fieldRole] = "Developer"
	d.Fields[fieldCompany] = "Acme"
	d.Fields[fieldCountry] = "Peru"
	d.Fields[fieldPhone] = "933166559"
	d.Fields[fieldEmail] = "leon@example.com"
	d.Fields[fieldWebsite] = "example.com"

	text := d.RenderText()
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Leon Matias", lines[0])
	assert.Equal(t, "Developer | Acme", lines[1])
	assert.Equal(t, "Peru", lines[2])
	assert.Equal(t, "+51933166559", lines[3])
	assert.Equal(t, "leon@example.com", lines[4])
	assert.Equal(t, "example.com", lines[5])
}

func TestWebsiteDisplayTruncates(t *testing.T) {
	long := "https://example.com/a/very/long/path/indeed"
	assert.Equal(t, long[:30]+"...", websiteDisplay(long))
	assert.Equal(t, "example.com", websiteDisplay("example.com"))
}

func TestWebsiteDisplayKeepsRunesWhole(t *testing.T) {
	site := "https://café-münchen.example.com/menú/täglich"
	got := websiteDisplay(site)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, string([]rune(site)[:30])+"...", got)

	// A 30-rune value with multi-byte characters is left alone.
	short := strings.Repeat("ü", 30)
	assert.Equal(t, short, websiteDisplay(short))
}

func TestWebsiteHref(t *testing.T) {
	assert.Equal(t, "https://example.com", websiteHref("https://example.com"))
	assert.Equal(t, "http://example.com", websiteHref("example.com"))
}

func TestParseFieldOrder(t *testing.T) {
	full := make([]string, len(defaultFieldOrder))
	for i, f := range defaultFieldOrder {
		full[i] = string(f)
	}

	order, ok := parseFieldOrder(strings.Join(full, ","))
	require.True(t, ok)
	assert.Equal(t, defaultFieldOrder, order)

	_, ok = parseFieldOrder("name,role")
	assert.False(t, ok)

	// Duplicates are not a permutation.
	dup := append([]string(nil), full...)
	dup[1] = dup[0]
	_, ok = parseFieldOrder(strings.Join(dup, ","))
	assert.False(t, ok)

	_, ok = parseFieldOrder("")
	assert.False(t, ok)
}
