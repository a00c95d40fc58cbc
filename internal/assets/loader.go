package assets

// Loader returns stylesheets and page templates by name, without extension.
// Misses are reported as ErrStyleNotFound or ErrTemplateNotFound; names that
// fail ValidateAssetName as ErrInvalidAssetName.
type Loader interface {
	Style(name string) (string, error)
	Template(name string) (string, error)
}

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "resume"
)

// kind is one family of assets: where it lives and how a miss is reported.
type kind struct {
	dir, ext string
	missing  error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", missing: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", missing: ErrTemplateNotFound}
)

func (k kind) file(name string) string { return k.dir + "/" + name + k.ext }
