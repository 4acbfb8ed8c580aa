package main

import (
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := newLogger()

	site, err := loadSiteConfig("site.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid site config")
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	r.SetFuncMap(template.FuncMap{"languageColor": languageColor})
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	// Home page: all marketing sections in one render.
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", pageData(c, site, gin.H{
			"SkillCategories": skillCategories,
			"Companies":       companyCards,
			"Highlights":      aboutHighlights,
			"HeroImages":      heroImages,
		}))
	})

	// GitHub stats fragment, loaded lazily by the page. A failed fetch
	// renders nothing; the section just stays empty.
	r.GET("/github-content", func(c *gin.Context) {
		repos, err := fetchGitHubRepos(site.GitHubUser)
		if err != nil {
			log.Error().Err(err).Str("user", site.GitHubUser).Msg("github fetch failed")
			c.String(http.StatusOK, "")
			return
		}
		c.HTML(http.StatusOK, "github-content.html", pageData(c, site, gin.H{
			"Languages": topLanguages(repos, 6),
			"Repos":     topRepositories(repos, 6),
		}))
	})

	// HTMX contact form endpoint, replies with a success or error fragment.
	r.POST("/contact", func(c *gin.Context) {
		lang := negotiateLang(c)
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if err := sendContactEmail(site, name, email, message); err != nil {
			log.Error().Err(err).Msg("contact email failed")
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"Message": T(lang, "contact.form.error"),
			})
			return
		}
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"Message": T(lang, "contact.form.success"),
		})
	})

	// Language switch: set the cookie and send the visitor back. The full
	// re-render is what swaps every resolved string.
	r.GET("/lang/:lang", func(c *gin.Context) {
		if l, ok := normalizeLang(c.Param("lang")); ok {
			c.SetCookie(langCookie, string(l), int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)
		}
		c.Redirect(http.StatusFound, backTo(c))
	})

	r.GET("/theme/toggle", func(c *gin.Context) {
		next := "light"
		if themeFromRequest(c) == "light" {
			next = "dark"
		}
		c.SetCookie(themeCookie, next, int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)
		c.Redirect(http.StatusFound, backTo(c))
	})

	setupToolsRoutes(r, site, log)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", pageData(c, site, nil))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("portfolio server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func newLogger() zerolog.Logger {
	out := zerolog.New(os.Stderr)
	if gin.Mode() == gin.DebugMode {
		console := zerolog.NewConsoleWriter()
		console.TimeFormat = time.RFC3339
		out = zerolog.New(console)
	}
	return out.With().Timestamp().Logger()
}

// backTo picks where a toggle redirect should land.
func backTo(c *gin.Context) string {
	if next := c.Query("next"); next != "" {
		return next
	}
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}

func sendContactEmail(site siteConfig, name, email, message string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	toEmail := os.Getenv("TO_EMAIL")

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if toEmail == "" {
		toEmail = site.Email
	}
	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg)
}
