package main

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWifiContentGrammar(t *testing.T) {
	assert.Equal(t, "WIFI:T:WPA;S:MyNet;P:secret1;;", wifiContent("WPA", "MyNet", "secret1"))
	assert.Equal(t, "WIFI:T:nopass;S:Cafe;P:;;", wifiContent("nopass", "Cafe", ""))
}

func TestWhatsappContentEncodesMessage(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/15551234567?text=Hello%21",
		whatsappContent("15551234567", "Hello!"))
	// Spaces percent-encode, never the form-encoding plus sign.
	assert.Equal(t,
		"https://wa.me/51933166559?text=Hola%20Leon",
		whatsappContent("51933166559", "Hola Leon"))
	// A literal plus in the message survives as its escape.
	assert.Equal(t,
		"https://wa.me/15551234567?text=1%2B1",
		whatsappContent("15551234567", "1+1"))
}

func TestDefaultContentFor(t *testing.T) {
	assert.Equal(t, "https://", defaultContentFor(qrURL))
	assert.Equal(t, "mailto:", defaultContentFor(qrEmail))
	assert.Equal(t, "", defaultContentFor(qrText))
	assert.Equal(t, "", defaultContentFor(qrWhatsApp))
	assert.Equal(t, "", defaultContentFor(qrWifi))
}

func TestDeriveContent(t *testing.T) {
	t.Run("whatsapp", func(t *testing.T) {
		d := defaultQrDocument()
		d.Kind = qrWhatsApp
		d.WhatsAppNumber = "51933166559"
		d.WhatsAppMessage = "Hello!"
		d.deriveContent()
		assert.Equal(t, "https://wa.me/51933166559?text=Hello%21", d.Content)
	})

	t.Run("wifi", func(t *testing.T) {
		d := defaultQrDocument()
		d.Kind = qrWifi
		d.WifiSSID = "MyNet"
		d.WifiPassword = "secret1"
		d.WifiEncryption = "WPA"
		d.deriveContent()
		assert.Equal(t, "WIFI:T:WPA;S:MyNet;P:secret1;;", d.Content)
	})

	t.Run("email adds prefix once", func(t *testing.T) {
		d := defaultQrDocument()
		d.Kind = qrEmail
		d.Content = "leon@example.com"
		d.deriveContent()
		assert.Equal(t, "mailto:leon@example.com", d.Content)

		d.deriveContent()
		assert.Equal(t, "mailto:leon@example.com", d.Content)
	})

	t.Run("url untouched", func(t *testing.T) {
		d := defaultQrDocument()
		d.Content = "https://example.com"
		d.deriveContent()
		assert.Equal(t, "https://example.com", d.Content)
	})
}

func TestLogoSizeMultiplier(t *testing.T) {
	assert.Equal(t, 5, logoSizeMultiplier(0))
	assert.Equal(t, 5, logoSizeMultiplier(0.2))
	assert.Equal(t, 2, logoSizeMultiplier(0.5))
	assert.Equal(t, 2, logoSizeMultiplier(0.9))
	assert.Equal(t, 10, logoSizeMultiplier(0.05))
	assert.Equal(t, 5, logoSizeMultiplier(1.5))
}

func TestRenderImageProducesPNG(t *testing.T) {
	d := defaultQrDocument()
	png, err := d.RenderImage("png")
	require.NoError(t, err)
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderSVG(t *testing.T) {
	d := defaultQrDocument()
	d.Style.FgColor = "#112233"
	d.Style.BgColor = "#ffffff"

	svg, err := d.RenderSVG()
	require.NoError(t, err)

	out := string(svg)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, `fill="#112233"`)
	assert.NotContains(t, out, "<circle")

	d.Style.DotShape = "dots"
	svg, err = d.RenderSVG()
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<circle")
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, parseHexColor("#112233"))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, parseHexColor("#ffffff"))
	assert.Equal(t, color.White, parseHexColor("red"))
	assert.Equal(t, color.White, parseHexColor("#zzzzzz"))
}

func pngDataURI(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestLogoImageMarginUsesBackgroundColor(t *testing.T) {
	d := defaultQrDocument()
	d.Style.BgColor = "#102030"
	d.Style.LogoMargin = 10
	d.Style.LogoData = pngDataURI(t, imaging.New(20, 20, color.Black))

	logo, err := d.logoImage()
	require.NoError(t, err)

	b := logo.Bounds()
	assert.Equal(t, 40, b.Dx())
	assert.Equal(t, 40, b.Dy())

	// The padded corner carries the configured background, not white.
	r, g, bl, _ := logo.At(b.Min.X, b.Min.Y).RGBA()
	assert.Equal(t, uint32(0x10), r>>8)
	assert.Equal(t, uint32(0x20), g>>8)
	assert.Equal(t, uint32(0x30), bl>>8)
}

func TestEncodeLogoPNGKeepsTransparency(t *testing.T) {
	src := imaging.New(20, 20, color.NRGBA{R: 0xff, A: 0x80})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, src, imaging.PNG))

	uri, err := encodeLogoPNG(&buf)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	decoded, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	_, _, _, a := decoded.At(10, 10).RGBA()
	assert.NotEqual(t, uint32(0xffff), a, "alpha channel lost")
}

func TestEncodeLogoPNGCapsSize(t *testing.T) {
	src := imaging.New(800, 400, color.Black)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, src, imaging.PNG))

	uri, err := encodeLogoPNG(&buf)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	decoded, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 150, decoded.Bounds().Dy())
}

func TestPickShape(t *testing.T) {
	assert.Equal(t, "dots", pickShape("dots", qrShapeChoices.Dots, "square"))
	assert.Equal(t, "square", pickShape("triangle", qrShapeChoices.Dots, "square"))
}
