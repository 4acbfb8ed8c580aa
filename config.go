package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// siteConfig is the owner profile rendered into every page. It ships with
// compiled-in defaults and can be overridden with a site.yaml next to the
// binary, so the server always has something to serve.
type siteConfig struct {
	Name         string `yaml:"name" validate:"required"`
	Role         string `yaml:"role" validate:"required"`
	Email        string `yaml:"email" validate:"required,email"`
	Phone        string `yaml:"phone" validate:"required"`
	PhoneDisplay string `yaml:"phone_display"`
	Location     string `yaml:"location"`
	GitHubUser   string `yaml:"github_user" validate:"required"`
	GitHubURL    string `yaml:"github_url" validate:"omitempty,url"`
	LinkedInURL  string `yaml:"linkedin_url" validate:"omitempty,url"`
	WhatsAppLink string `yaml:"whatsapp_link" validate:"omitempty,url"`
	ResumeURL    string `yaml:"resume_url" validate:"omitempty,url"`
}

func defaultSiteConfig() siteConfig {
	return siteConfig{
		Name:         "Leon Matias",
		Role:         "Senior Full Stack Developer",
		Email:        "leonmatias1991@gmail.com",
		Phone:        "51933166559",
		PhoneDisplay: "+51 933 166 559",
		Location:     "Perú",
		GitHubUser:   "devLeonMat",
		GitHubURL:    "https://github.com/devLeonMat",
		LinkedInURL:  "https://www.linkedin.com/in/fs-leon-matias/",
		WhatsAppLink: "https://wa.me/51933166559?text=Hola%20Leon,%20me%20gustar%C3%ADa%20contactarte",
		ResumeURL:    "https://drive.google.com/file/d/1-dgsmjTBgCwS9ZX_piaxwiz1XMEMdobO/view?usp=sharing",
	}
}

// loadSiteConfig reads path if it exists, layers it over the defaults and
// validates the result. A missing file is not an error.
func loadSiteConfig(path string) (siteConfig, error) {
	cfg := defaultSiteConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read site config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse site config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validate site config: %w", err)
	}
	return cfg, nil
}
