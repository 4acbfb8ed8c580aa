package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// QR composer. Content derivation is pure string construction; matrix
// rendering is delegated to the go-qrcode library, with SVG export done
// through its Writer extension point.

type qrKind string

const (
	qrURL      qrKind = "url"
	qrText     qrKind = "text"
	qrEmail    qrKind = "email"
	qrWhatsApp qrKind = "whatsapp"
	qrWifi     qrKind = "wifi"
)

type qrStyle struct {
	DotShape          string
	CornerSquareShape string
	CornerDotShape    string
	FgColor           string
	BgColor           string
	LogoData          string
	LogoSize          float64
	LogoMargin        int
}

type qrDocument struct {
	Kind    qrKind
	Content string

	WhatsAppNumber  string
	WhatsAppMessage string
	WifiSSID        string
	WifiPassword    string
	WifiEncryption  string

	Style qrStyle
}

// KindName exists for templates, which compare against plain strings.
func (d qrDocument) KindName() string { return string(d.Kind) }

func defaultQrDocument() qrDocument {
	return qrDocument{
		Kind:           qrURL,
		Content:        "https://leonmatias.dev",
		WifiEncryption: "WPA",
		Style: qrStyle{
			DotShape:          "square",
			CornerSquareShape: "square",
			CornerDotShape:    "square",
			FgColor:           "#000000",
			BgColor:           "#ffffff",
			LogoSize:          0.4,
			LogoMargin:        10,
		},
	}
}

// defaultContentFor gives the kind-appropriate reset value used when the
// payload kind switches.
func defaultContentFor(kind qrKind) string {
	switch kind {
	case qrURL:
		return "https://"
	case qrEmail:
		return "mailto:"
	default:
		return ""
	}
}

// whatsappContent percent-encodes the message; spaces become %20, not
// the form-encoding plus sign.
func whatsappContent(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + text
}

// wifiContent follows the WIFI config string grammar; values are encoded
// as-is, correctness of the payload is the user's business.
func wifiContent(encryption, ssid, password string) string {
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", encryption, ssid, password)
}

// deriveContent recomputes Content for the derived kinds and normalizes
// the email prefix; url and text keep the directly edited value.
func (d *qrDocument) deriveContent() {
	switch d.Kind {
	case qrWhatsApp:
		d.Content = whatsappContent(d.WhatsAppNumber, d.WhatsAppMessage)
	case qrWifi:
		d.Content = wifiContent(d.WifiEncryption, d.WifiSSID, d.WifiPassword)
	case qrEmail:
		if !strings.HasPrefix(d.Content, "mailto:") {
			d.Content = "mailto:" + d.Content
		}
	}
}

var circleDotShapes = map[string]bool{
	"dots":           true,
	"rounded":        true,
	"extra-rounded":  true,
	"classy":         true,
	"classy-rounded": true,
}

const qrImageFormatJPEG = "jpeg"

func (d *qrDocument) writerOptions(format string) ([]standard.ImageOption, error) {
	opts := []standard.ImageOption{
		standard.WithFgColorRGBHex(d.Style.FgColor),
		standard.WithBgColorRGBHex(d.Style.BgColor),
	}
	if circleDotShapes[d.Style.DotShape] {
		opts = append(opts, standard.WithCircleShape())
	}
	if format == qrImageFormatJPEG {
		opts = append(opts, standard.WithBuiltinImageEncoder(standard.JPEG_FORMAT))
	}
	if d.Style.LogoData != "" {
		logo, err := d.logoImage()
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			standard.WithLogoImage(logo),
			standard.WithLogoSizeMultiplier(logoSizeMultiplier(d.Style.LogoSize)),
		)
	}
	return opts, nil
}

// logoSizeMultiplier converts the 0-1 size fraction into the library's
// divisor form (logo width = qr width / multiplier).
func logoSizeMultiplier(size float64) int {
	if size <= 0 || size > 1 {
		return 5
	}
	m := int(math.Round(1 / size))
	if m < 2 {
		m = 2
	}
	if m > 10 {
		m = 10
	}
	return m
}

// parseHexColor reads a #rrggbb value; anything else is white.
func parseHexColor(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.White
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.White
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// logoImage decodes the uploaded logo data URI and pads it with the
// configured margin on a background-colored canvas.
func (d *qrDocument) logoImage() (image.Image, error) {
	payload := d.Style.LogoData
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode logo data: %w", err)
	}
	logo, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode logo image: %w", err)
	}
	if d.Style.LogoMargin <= 0 {
		return logo, nil
	}
	b := logo.Bounds()
	canvas := imaging.New(b.Dx()+2*d.Style.LogoMargin, b.Dy()+2*d.Style.LogoMargin, parseHexColor(d.Style.BgColor))
	return imaging.PasteCenter(canvas, logo), nil
}

func encodePNGDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

const logoMaxSize = 300

// encodeLogoPNG prepares an uploaded overlay image: shrink oversized
// logos, keep PNG so transparency survives, return a data URI.
func encodeLogoPNG(r io.Reader) (string, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > logoMaxSize || b.Dy() > logoMaxSize {
		img = imaging.Fit(img, logoMaxSize, logoMaxSize, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	return encodePNGDataURI(buf.Bytes()), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// RenderImage encodes the current content into a PNG or JPEG with the
// configured styling.
func (d *qrDocument) RenderImage(format string) ([]byte, error) {
	qrc, err := qrcode.NewWith(d.Content, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart))
	if err != nil {
		return nil, fmt.Errorf("build qr matrix: %w", err)
	}
	opts, err := d.writerOptions(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := standard.NewWithWriter(nopWriteCloser{&buf}, opts...)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("render qr image: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG exports the matrix as vector output through a custom writer.
func (d *qrDocument) RenderSVG() ([]byte, error) {
	qrc, err := qrcode.NewWith(d.Content, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart))
	if err != nil {
		return nil, fmt.Errorf("build qr matrix: %w", err)
	}
	w := &svgWriter{style: d.Style}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("render qr svg: %w", err)
	}
	return w.buf.Bytes(), nil
}

// svgWriter implements qrcode.Writer, emitting one shape per set module.
type svgWriter struct {
	style qrStyle
	buf   bytes.Buffer
}

const (
	svgModuleSize = 10
	svgBorder     = 2 // quiet zone, in modules
)

func (w *svgWriter) Write(mat qrcode.Matrix) error {
	width := (mat.Width() + 2*svgBorder) * svgModuleSize
	height := (mat.Height() + 2*svgBorder) * svgModuleSize

	fmt.Fprintf(&w.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height)
	fmt.Fprintf(&w.buf, `<rect width="%d" height="%d" fill="%s"/>`, width, height, w.style.BgColor)

	circle := circleDotShapes[w.style.DotShape]
	mat.Iterate(qrcode.IterDirection_ROW, func(x int, y int, v qrcode.QRValue) {
		if !v.IsSet() {
			return
		}
		px := (x + svgBorder) * svgModuleSize
		py := (y + svgBorder) * svgModuleSize
		if circle {
			r := svgModuleSize / 2
			fmt.Fprintf(&w.buf, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, px+r, py+r, r, w.style.FgColor)
		} else {
			fmt.Fprintf(&w.buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, px, py, svgModuleSize, svgModuleSize, w.style.FgColor)
		}
	})

	w.buf.WriteString(`</svg>`)
	return nil
}

func (w *svgWriter) Close() error { return nil }

var qrShapeChoices = struct {
	Dots, CornerSquares, CornerDots []string
}{
	Dots:          []string{"square", "dots", "rounded", "extra-rounded", "classy", "classy-rounded"},
	CornerSquares: []string{"square", "dot", "extra-rounded"},
	CornerDots:    []string{"square", "dot"},
}

func pickShape(v string, choices []string, def string) string {
	for _, c := range choices {
		if v == c {
			return c
		}
	}
	return def
}

// parseQrForm rebuilds the QR document from the posted tool form and
// re-derives the content.
func parseQrForm(c *gin.Context) qrDocument {
	d := defaultQrDocument()

	switch k := qrKind(c.PostForm("kind")); k {
	case qrURL, qrText, qrEmail, qrWhatsApp, qrWifi:
		d.Kind = k
	}
	if v, ok := c.GetPostForm("content"); ok {
		d.Content = v
	}
	d.WhatsAppNumber = c.PostForm("wa_number")
	d.WhatsAppMessage = c.PostForm("wa_message")
	d.WifiSSID = c.PostForm("wifi_ssid")
	d.WifiPassword = c.PostForm("wifi_password")
	switch enc := c.PostForm("wifi_encryption"); enc {
	case "WPA", "WEP", "nopass":
		d.WifiEncryption = enc
	}

	d.Style.DotShape = pickShape(c.PostForm("dot_shape"), qrShapeChoices.Dots, d.Style.DotShape)
	d.Style.CornerSquareShape = pickShape(c.PostForm("corner_square"), qrShapeChoices.CornerSquares, d.Style.CornerSquareShape)
	d.Style.CornerDotShape = pickShape(c.PostForm("corner_dot"), qrShapeChoices.CornerDots, d.Style.CornerDotShape)
	if v := c.PostForm("fg"); v != "" {
		d.Style.FgColor = v
	}
	if v := c.PostForm("bg"); v != "" {
		d.Style.BgColor = v
	}
	d.Style.LogoData = c.PostForm("logo")
	if v, err := strconv.Atoi(c.PostForm("logo_size")); err == nil && v >= 0 && v <= 100 {
		d.Style.LogoSize = float64(v) / 100
	}
	if v, err := strconv.Atoi(c.PostForm("logo_margin")); err == nil && v >= 0 && v <= 50 {
		d.Style.LogoMargin = v
	}

	// Kind switches reset content before derivation takes over.
	if c.PostForm("kind_changed") != "" {
		d.Content = defaultContentFor(d.Kind)
	}
	d.deriveContent()
	return d
}
