package main

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Routes for the /tools composer shell: the signature builder and the QR
// generator. Every interaction posts the whole form and gets a fragment
// back; nothing is stored between requests.

func setupToolsRoutes(r *gin.Engine, site siteConfig, log zerolog.Logger) {
	r.GET("/tools", func(c *gin.Context) {
		sig := defaultSignature()
		qr := defaultQrDocument()
		active := c.Query("tool")
		if active != "qr-generator" {
			active = "signature-generator"
		}

		qrPreview := ""
		if png, err := qr.RenderImage("png"); err == nil {
			qrPreview = encodePNGDataURI(png)
		}

		c.HTML(http.StatusOK, "tools.html", pageData(c, site, gin.H{
			"ActiveTool": active,
			"Sig":        signaturePanelData(c, site, sig),
			"Qr":         qrPanelData(c, site, qr, qrPreview, ""),
		}))
	})

	tools := r.Group("/tools")

	tools.POST("/signature/preview", func(c *gin.Context) {
		d := parseSignatureForm(c)
		if idx, err := strconv.Atoi(c.PostForm("move_index")); err == nil {
			d.moveField(idx, c.PostForm("move_dir"))
		}
		c.HTML(http.StatusOK, "signature-panel.html", signaturePanelData(c, site, d))
	})

	tools.POST("/signature/image", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.String(http.StatusBadRequest, "no file")
			return
		}
		src, err := file.Open()
		if err != nil {
			c.String(http.StatusBadRequest, "unreadable file")
			return
		}
		defer src.Close()

		dataURI, err := resizeAvatar(src)
		if err != nil {
			log.Error().Err(err).Str("filename", file.Filename).Msg("avatar resize failed")
			c.String(http.StatusUnprocessableEntity, "not an image")
			return
		}
		c.String(http.StatusOK, dataURI)
	})

	tools.POST("/signature/export", func(c *gin.Context) {
		d := parseSignatureForm(c)
		c.JSON(http.StatusOK, gin.H{
			"html": d.RenderHTML(),
			"text": d.RenderText(),
		})
	})

	tools.POST("/qr/logo", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.String(http.StatusBadRequest, "no file")
			return
		}
		src, err := file.Open()
		if err != nil {
			c.String(http.StatusBadRequest, "unreadable file")
			return
		}
		defer src.Close()

		dataURI, err := encodeLogoPNG(src)
		if err != nil {
			log.Error().Err(err).Str("filename", file.Filename).Msg("logo encode failed")
			c.String(http.StatusUnprocessableEntity, "not an image")
			return
		}
		c.String(http.StatusOK, dataURI)
	})

	tools.POST("/qr/preview", func(c *gin.Context) {
		d := parseQrForm(c)
		lang := negotiateLang(c)

		if d.Content == "" {
			c.HTML(http.StatusOK, "qr-panel.html", qrPanelData(c, site, d, "", T(lang, "tools.qr-generator.empty")))
			return
		}
		png, err := d.RenderImage("png")
		if err != nil {
			log.Error().Err(err).Msg("qr preview render failed")
			c.HTML(http.StatusOK, "qr-panel.html", qrPanelData(c, site, d, "", T(lang, "tools.qr-generator.empty")))
			return
		}
		c.HTML(http.StatusOK, "qr-panel.html", qrPanelData(c, site, d, encodePNGDataURI(png), ""))
	})

	tools.POST("/qr/export", func(c *gin.Context) {
		d := parseQrForm(c)
		if d.Content == "" {
			c.String(http.StatusBadRequest, "empty content")
			return
		}

		format := c.PostForm("format")
		if format == "" {
			format = c.Query("format")
		}

		var (
			payload []byte
			ctype   string
			err     error
		)
		switch format {
		case "svg":
			payload, err = d.RenderSVG()
			ctype = "image/svg+xml"
		case "jpeg":
			payload, err = d.RenderImage("jpeg")
			ctype = "image/jpeg"
		default:
			format = "png"
			payload, err = d.RenderImage("png")
			ctype = "image/png"
		}
		if err != nil {
			log.Error().Err(err).Str("format", format).Msg("qr export failed")
			c.String(http.StatusInternalServerError, "export failed")
			return
		}

		filename := "qr-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + "." + format
		c.Header("Content-Disposition", `attachment; filename=`+filename)
		c.Data(http.StatusOK, ctype, payload)
	})
}

func signaturePanelData(c *gin.Context, site siteConfig, d signatureDoc) gin.H {
	orderCSV := make([]string, len(d.Order))
	for i, f := range d.Order {
		orderCSV[i] = string(f)
	}
	return pageData(c, site, gin.H{
		"Doc":       d,
		"OrderCSV":  strings.Join(orderCSV, ","),
		"SigHTML":   template.HTML(d.RenderHTML()),
		"Countries": countries,
	})
}

func qrPanelData(c *gin.Context, site siteConfig, d qrDocument, previewURI, notice string) gin.H {
	return pageData(c, site, gin.H{
		"Doc":         d,
		"PreviewURI":  previewURI,
		"Notice":      notice,
		"Shapes":      qrShapeChoices,
		"Kinds":       []string{"url", "text", "email", "whatsapp", "wifi"},
		"LogoSizePct": int(d.Style.LogoSize * 100),
		// The email input edits the address without its scheme prefix.
		"EmailValue": strings.TrimPrefix(d.Content, "mailto:"),
	})
}
