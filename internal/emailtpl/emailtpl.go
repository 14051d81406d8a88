// Package emailtpl holds the four transactional email templates and the
// placeholder substitution used before sending. Templates are authored with
// the cliente (blue) palette; proveedor emails get a green palette swapped in
// by plain string replacement before placeholders are resolved.
package emailtpl

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Template names the four known email bodies.
type Template string

const (
	ClienteBienvenida    Template = "cliente-bienvenida"
	ProveedorBienvenida  Template = "proveedor-bienvenida"
	CuentaActivada       Template = "cuenta-activada"
	RecuperacionPassword Template = "recuperacion-password"
)

// Subjects maps each template to its email subject line.
var Subjects = map[Template]string{
	ClienteBienvenida:    "¡Bienvenido a AWA! 💧 Confirmá tu cuenta",
	ProveedorBienvenida:  "¡Bienvenido a AWA! 🏪 Confirmá tu cuenta de proveedor",
	CuentaActivada:       "✅ Tu cuenta AWA está activada",
	RecuperacionPassword: "🔐 Recuperá tu contraseña de AWA",
}

// Data carries the placeholder values. UserType drives the palette swap.
type Data struct {
	Nombre           string
	ConfirmationURL  string
	LoginURL         string
	ResetPasswordURL string
	UserType         string // "cliente" | "proveedor"
}

// proveedorPalette: blue hues → green hues, applied before substitution.
var proveedorPalette = strings.NewReplacer(
	"linear-gradient(135deg, #3B82F6 0%, #06B6D4 100%)", "linear-gradient(135deg, #10B981 0%, #059669 100%)",
	"linear-gradient(135deg, #3B82F6 0%, #2563EB 100%)", "linear-gradient(135deg, #10B981 0%, #059669 100%)",
	"#3B82F6", "#10B981",
	"#1e40af", "#065f46",
	"#eff6ff", "#ecfdf5",
)

// Render loads the template, applies the proveedor palette when applicable,
// and substitutes every {{key}} placeholder.
func Render(tpl Template, data Data) (string, error) {
	raw, err := templatesFS.ReadFile("templates/" + string(tpl) + ".html")
	if err != nil {
		return "", fmt.Errorf("emailtpl: unknown template %q: %w", tpl, err)
	}
	html := string(raw)

	if data.UserType == "proveedor" {
		html = proveedorPalette.Replace(html)
	}

	for key, value := range map[string]string{
		"nombre":             data.Nombre,
		"confirmation_url":   data.ConfirmationURL,
		"login_url":          data.LoginURL,
		"reset_password_url": data.ResetPasswordURL,
	} {
		html = strings.ReplaceAll(html, "{{"+key+"}}", value)
	}

	return html, nil
}
