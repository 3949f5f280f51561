package setup

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"splitnest-cli/core/envfile"

	"github.com/joho/godotenv"
)

// Placeholders written for the optional Google sign-in.
const (
	PlaceholderGoogleClientID     = "your-google-client-id"
	PlaceholderGoogleClientSecret = "your-google-client-secret"
)

var envTemplate = template.Must(template.New(envfile.FileName).Parse(`# Database
MONGODB_URI={{.MongoURI}}

# NextAuth
NEXTAUTH_URL={{.AppURL}}
NEXTAUTH_SECRET={{.Secret}}

# Google OAuth (optional - for Google sign-in)
# Get these from https://console.developers.google.com/
GOOGLE_CLIENT_ID={{.GoogleClientID}}
GOOGLE_CLIENT_SECRET={{.GoogleClientSecret}}
`))

// TemplateValues are interpolated into the configuration file.
type TemplateValues struct {
	MongoURI           string
	AppURL             string
	Secret             string
	GoogleClientID     string
	GoogleClientSecret string
}

// entries pairs each key with the value written for it.
func (v TemplateValues) entries() []struct{ key, value string } {
	return []struct{ key, value string }{
		{envfile.KeyMongoURI, v.MongoURI},
		{envfile.KeyNextAuthURL, v.AppURL},
		{envfile.KeyNextAuthSecret, v.Secret},
		{envfile.KeyGoogleClientID, v.GoogleClientID},
		{envfile.KeyGoogleClientSecret, v.GoogleClientSecret},
	}
}

// Render produces the configuration file content for v.
//
// Values may not contain line breaks. The result is re-read with godotenv,
// the parser the web application's tooling follows, and every key must come
// back with exactly the value that was written; anything dotenv would quote,
// strip or split is rejected before it reaches disk.
func Render(v TemplateValues) ([]byte, error) {
	for _, e := range v.entries() {
		if strings.ContainsAny(e.value, "\r\n") {
			return nil, fmt.Errorf("value for %s contains a line break", e.key)
		}
	}

	var buf bytes.Buffer
	if err := envTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", envfile.FileName, err)
	}

	parsed, err := godotenv.Unmarshal(buf.String())
	if err != nil {
		return nil, fmt.Errorf("rendered %s is not valid dotenv: %w", envfile.FileName, err)
	}
	if len(parsed) != len(v.entries()) {
		return nil, fmt.Errorf("rendered %s defines %d keys, want %d", envfile.FileName, len(parsed), len(v.entries()))
	}
	for _, e := range v.entries() {
		got, ok := parsed[e.key]
		if !ok {
			return nil, fmt.Errorf("rendered %s is missing %s", envfile.FileName, e.key)
		}
		if got != e.value {
			return nil, fmt.Errorf("value for %s does not survive dotenv parsing: got %q", e.key, got)
		}
	}

	return buf.Bytes(), nil
}
