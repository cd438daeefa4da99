package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// AllowedOrigins covers the Vite dev server and the public site; CLIENT_URL
// and the comma-separated ALLOWED_ORIGINS extend it per deployment.
var AllowedOrigins = initAllowedOrigins()

func initAllowedOrigins() []string {
	origins := []string{
		"http://localhost:5173",
		"https://tarimpazar.com",
		"https://www.tarimpazar.com",
	}

	if clientURL := strings.TrimSpace(os.Getenv("CLIENT_URL")); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
