package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationTablesCoverSameKeys(t *testing.T) {
	es := translations[langES]
	en := translations[langEN]
	require.NotEmpty(t, es)
	require.NotEmpty(t, en)

	for key := range en {
		_, ok := es[key]
		assert.True(t, ok, "key %q missing from es table", key)
	}
	for key := range es {
		_, ok := en[key]
		assert.True(t, ok, "key %q missing from en table", key)
	}
}

func TestTMissingKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "nonexistent.key", T(langES, "nonexistent.key"))
	assert.Equal(t, "nonexistent.key", T(langEN, "nonexistent.key"))
}

func TestTResolvesPerLanguage(t *testing.T) {
	assert.Equal(t, "Inicio", T(langES, "nav.home"))
	assert.Equal(t, "Home", T(langEN, "nav.home"))
}

func TestTIsStable(t *testing.T) {
	first := T(langES, "hero.greeting")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, T(langES, "hero.greeting"))
	}
}

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		tag  string
		want language
		ok   bool
	}{
		{"es", langES, true},
		{"EN", langEN, true},
		{"es-PE", langES, true},
		{"en-US", langEN, true},
		{"fr", "", false},
		{"", "", false},
		{"  es  ", langES, true},
	}
	for _, tt := range tests {
		got, ok := normalizeLang(tt.tag)
		assert.Equal(t, tt.ok, ok, "tag %q", tt.tag)
		assert.Equal(t, tt.want, got, "tag %q", tt.tag)
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   language
		ok     bool
	}{
		{"en-US,en;q=0.9,es;q=0.8", langEN, true},
		{"es;q=0.9,en;q=0.5", langES, true},
		{"fr-FR,fr;q=0.9", "", false},
		{"", "", false},
		{"es", langES, true},
	}
	for _, tt := range tests {
		got, ok := parseAcceptLanguage(tt.header)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.want, got, "header %q", tt.header)
	}
}

func TestNegotiateLangPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		return c
	}

	t.Run("cookie wins over header", func(t *testing.T) {
		c := newCtx()
		c.Request.Header.Set("Cookie", langCookie+"=es")
		c.Request.Header.Set("Accept-Language", "en")
		assert.Equal(t, langES, negotiateLang(c))
	})

	t.Run("query wins over header", func(t *testing.T) {
		c := newCtx()
		c.Request.URL.RawQuery = "lang=es"
		c.Request.Header.Set("Accept-Language", "en")
		assert.Equal(t, langES, negotiateLang(c))
	})

	t.Run("header when nothing explicit", func(t *testing.T) {
		c := newCtx()
		c.Request.Header.Set("Accept-Language", "es-PE,es;q=0.9")
		assert.Equal(t, langES, negotiateLang(c))
	})

	t.Run("default as last resort", func(t *testing.T) {
		c := newCtx()
		assert.Equal(t, defaultLang, negotiateLang(c))
	})
}
