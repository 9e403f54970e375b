package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	Env            string
	AllowedOrigins []string
	DatabaseURL    string // optional; in-memory stores are used without it

	SheetsClientEmail string
	SheetsPrivateKey  string
	SheetID           string
	SheetRange        string
	SheetsTimeout     time.Duration
	BusinessTimezone  string

	SMTPHost    string
	SMTPPort    int
	SMTPSecure  bool
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	SMTPVerify  bool
	SMTPTimeout time.Duration
	AdminEmail  string

	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration

	AdminPasswordHash string
	AdminJWTSecret    string
	AdminSessionTTL   time.Duration
}

var defaults = map[string]any{
	"PORT":               "8080",
	"APP_ENV":            "production",
	"ALLOWED_ORIGINS":    "*",
	"GOOGLE_SHEET_RANGE": "Sheet1!A1",
	"SHEETS_TIMEOUT":     "10s",
	"BUSINESS_TIMEZONE":  "Asia/Kolkata",
	"SMTP_PORT":          587,
	"SMTP_SECURE":        false,
	"SMTP_VERIFY":        true,
	"SMTP_TIMEOUT":       "15s",
	"GEMINI_MODEL":       "gemini-2.5-flash",
	"AI_TIMEOUT":         "30s",
	"ADMIN_SESSION_TTL":  "12h",
}

// Load reads .env (when present) and the process environment. Flags that
// were explicitly set on the command line win over the environment.
func Load(flags *pflag.FlagSet) Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	if flags != nil {
		if f := flags.Lookup("port"); f != nil && f.Changed {
			v.Set("PORT", f.Value.String())
		}
	}

	return Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("APP_ENV"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		DatabaseURL:    v.GetString("DATABASE_URL"),

		SheetsClientEmail: v.GetString("GOOGLE_SHEETS_CLIENT_EMAIL"),
		SheetsPrivateKey:  normalizePrivateKey(v.GetString("GOOGLE_SHEETS_PRIVATE_KEY")),
		SheetID:           v.GetString("GOOGLE_SHEET_ID"),
		SheetRange:        v.GetString("GOOGLE_SHEET_RANGE"),
		SheetsTimeout:     v.GetDuration("SHEETS_TIMEOUT"),
		BusinessTimezone:  v.GetString("BUSINESS_TIMEZONE"),

		SMTPHost:    v.GetString("SMTP_HOST"),
		SMTPPort:    v.GetInt("SMTP_PORT"),
		SMTPSecure:  v.GetBool("SMTP_SECURE"),
		SMTPUser:    v.GetString("SMTP_USER"),
		SMTPPass:    v.GetString("SMTP_PASS"),
		SMTPFrom:    v.GetString("SMTP_FROM"),
		SMTPVerify:  v.GetBool("SMTP_VERIFY"),
		SMTPTimeout: v.GetDuration("SMTP_TIMEOUT"),
		AdminEmail:  v.GetString("ADMIN_EMAIL"),

		GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
		GeminiModel:  v.GetString("GEMINI_MODEL"),
		AITimeout:    v.GetDuration("AI_TIMEOUT"),

		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		AdminJWTSecret:    v.GetString("ADMIN_JWT_SECRET"),
		AdminSessionTTL:   v.GetDuration("ADMIN_SESSION_TTL"),
	}
}

func (c Config) SheetsEnabled() bool {
	return c.SheetsClientEmail != "" && c.SheetsPrivateKey != "" && c.SheetID != ""
}

func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func (c Config) AIEnabled() bool { return c.GeminiAPIKey != "" }

func (c Config) DatabaseEnabled() bool { return c.DatabaseURL != "" }

func (c Config) AdminEnabled() bool {
	return c.AdminPasswordHash != "" && c.AdminJWTSecret != ""
}

// MailFrom is the envelope sender for outgoing mail.
func (c Config) MailFrom() string {
	if c.SMTPFrom != "" {
		return c.SMTPFrom
	}
	return c.SMTPUser
}

// AdminRecipient receives new-lead notifications; the SMTP account mails itself
// when no owner address is configured.
func (c Config) AdminRecipient() string {
	if c.AdminEmail != "" {
		return c.AdminEmail
	}
	return c.SMTPUser
}

// BusinessLocation resolves BUSINESS_TIMEZONE, falling back to IST.
func (c Config) BusinessLocation() *time.Location {
	if loc, err := time.LoadLocation(c.BusinessTimezone); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*60*60+30*60)
}

// Keys pasted into env files usually carry escaped newlines.
func normalizePrivateKey(k string) string {
	return strings.ReplaceAll(k, `\n`, "\n")
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
