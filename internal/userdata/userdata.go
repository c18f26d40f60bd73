// Package userdata renders the bootstrap payload handed to the instance on
// first boot. Every optional install is an explicit flag; nothing is
// interpolated into the script that is not enumerated here.
package userdata

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var bootstrapTemplate = template.Must(
	template.New("bootstrap.ps1.tmpl").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl"),
)

// Flags enumerates the optional software the bootstrap installs. Sunshine is
// the remote-desktop alternative whose stream ports sit in the ingress table.
type Flags struct {
	InstallGraphicsDriver    bool
	InstallSteam             bool
	InstallGogGalaxy         bool
	InstallOrigin            bool
	InstallEpicGamesLauncher bool
	InstallUplay             bool
	InstallSunshine          bool
	EnableAutoLogin          bool
}

// NeedsChocolatey reports whether any requested install is delivered through
// the package manager, which then has to be bootstrapped first.
func (f Flags) NeedsChocolatey() bool {
	return f.InstallSteam || f.InstallGogGalaxy || f.InstallOrigin ||
		f.InstallEpicGamesLauncher || f.InstallUplay || f.InstallSunshine
}

// Params feeds the bootstrap template.
type Params struct {
	SkipInstall           bool
	Region                string
	PasswordParameterName string
	Flags                 Flags
}

// Render produces the instance user data. With SkipInstall set the payload is
// empty and the instance boots stock.
func Render(p Params) (string, error) {
	if p.SkipInstall {
		return "", nil
	}

	var buf bytes.Buffer
	if err := bootstrapTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
