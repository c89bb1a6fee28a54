package profile

import (
	"strings"

	"github.com/artem13815/portfolio/pkg/validate"
)

// Platforms lists the accepted social link platforms.
var Platforms = []string{
	"instagram", "github", "linkedin", "whatsapp", "telegram", "twitter", "facebook",
	"youtube", "email", "phone", "website", "portfolio", "resume", "naukari",
}

func IsPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

func Validate(p Profile) validate.Errors {
	errs := validate.Errors{}
	errs.Required("first_name", p.FirstName, "First name is required")
	errs.Required("last_name", p.LastName, "Last name is required")
	if strings.TrimSpace(p.Email) == "" {
		errs.Add("email", "Email is required")
	} else if !validate.IsEmail(p.Email) {
		errs.Add("email", "Please enter a valid email")
	}
	return errs
}

// ValidateLink checks the platform and that the URL fits it.
func ValidateLink(l SocialLink) validate.Errors {
	errs := validate.Errors{}
	platform := strings.ToLower(strings.TrimSpace(l.Platform))
	if platform == "" {
		errs.Add("platform", "Platform is required")
	} else if !IsPlatform(platform) {
		errs.Add("platform", "Unknown platform")
	}
	url := strings.TrimSpace(l.URL)
	if url == "" {
		errs.Add("url", "URL is required")
		return errs
	}
	switch {
	case platform == "whatsapp" && !hasAnyPrefix(url, "https://wa.me/", "https://api.whatsapp.com/"):
		errs.Add("url", "WhatsApp URLs should start with https://wa.me/ or https://api.whatsapp.com/")
	case platform == "telegram" && !hasAnyPrefix(url, "https://t.me/", "https://telegram.me/"):
		errs.Add("url", "Telegram URLs should start with https://t.me/ or https://telegram.me/")
	case platform == "email" && !strings.HasPrefix(url, "mailto:"):
		errs.Add("url", "Email URLs should start with mailto:")
	case platform == "phone" && !strings.HasPrefix(url, "tel:"):
		errs.Add("url", "Phone URLs should start with tel:")
	case platform != "email" && platform != "phone" && !hasAnyPrefix(url, "http://", "https://"):
		errs.Add("url", "URL should start with http:// or https://")
	}
	return errs
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
