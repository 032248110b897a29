package builder

import (
	"path"
	"reflect"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingStrategy defines built-in schema naming conventions applied when a
// type is registered without an explicit name.
type NamingStrategy int

const (
	// NamingDefault uses "package.TypeName" format.
	// Example: models.User
	NamingDefault NamingStrategy = iota

	// NamingPascalCase uses "PackageTypeName" format.
	// Example: models.User -> ModelsUser
	NamingPascalCase

	// NamingCamelCase uses "packageTypeName" format.
	// Example: models.User -> modelsUser
	NamingCamelCase

	// NamingSnakeCase uses "package_type_name" format.
	// Example: models.User -> models_user
	NamingSnakeCase

	// NamingKebabCase uses "package-type-name" format.
	// Example: models.User -> models-user
	NamingKebabCase

	// NamingTypeOnly uses just "TypeName" without package.
	// Example: models.User -> User
	// May conflict for same-named types in different packages.
	NamingTypeOnly
)

// anonymousTypeName is the schema name used for anonymous struct types.
const anonymousTypeName = "AnonymousType"

// schemaNamer derives schema names from Go types.
type schemaNamer struct {
	strategy NamingStrategy
	template *template.Template
}

func newSchemaNamer() *schemaNamer {
	return &schemaNamer{strategy: NamingDefault}
}

type nameContext struct {
	// Type is the Go type name without package, brackets sanitized.
	Type string
	// Package is the package base name.
	Package string
}

// name derives a schema name for t using the configured template or
// strategy.
func (n *schemaNamer) name(t reflect.Type) string {
	ctx := buildNameContext(t)
	if ctx.Type == "" {
		return anonymousTypeName
	}

	if n.template != nil {
		var buf strings.Builder
		if err := n.template.Execute(&buf, ctx); err == nil {
			return sanitizeSchemaName(buf.String())
		}
		// Fall through to the strategy on template failure.
	}

	switch n.strategy {
	case NamingPascalCase:
		return toPascalCase(ctx.Package) + toPascalCase(ctx.Type)
	case NamingCamelCase:
		return toCamelCase(ctx.Package) + toPascalCase(ctx.Type)
	case NamingSnakeCase:
		return joinNonEmpty(toSnakeCase(ctx.Package), "_", toSnakeCase(ctx.Type))
	case NamingKebabCase:
		return joinNonEmpty(toKebabCase(ctx.Package), "-", toKebabCase(ctx.Type))
	case NamingTypeOnly:
		return ctx.Type
	default:
		return joinNonEmpty(ctx.Package, ".", ctx.Type)
	}
}

func buildNameContext(t reflect.Type) nameContext {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return nameContext{
		Type:    sanitizeSchemaName(t.Name()),
		Package: path.Base(t.PkgPath()),
	}
}

func joinNonEmpty(a, sep, b string) string {
	if a == "" || a == "." {
		return b
	}
	return a + sep + b
}

// sanitizeSchemaName replaces characters that are problematic in $ref URIs.
// Generic type names include brackets and commas; those become underscores.
func sanitizeSchemaName(name string) string {
	name = strings.ReplaceAll(name, "[", "_")
	name = strings.ReplaceAll(name, "]", "_")
	name = strings.ReplaceAll(name, ",", "_")
	name = strings.ReplaceAll(name, " ", "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

// toPascalCase converts a string to PascalCase. Separators trigger
// capitalization of the next letter.
func toPascalCase(s string) string {
	if s == "" || s == "." {
		return ""
	}
	var result strings.Builder
	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// toCamelCase is PascalCase with the first letter lowercased.
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// toSnakeCase lowercases, prefixing former uppercase letters with an
// underscore; existing separators become underscores.
func toSnakeCase(s string) string {
	if s == "" || s == "." {
		return ""
	}
	var result strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

// WithNameTemplate configures name derivation from a text/template over
// the fields {{.Package}} and {{.Type}}, with casing helpers available as
// template functions. An invalid template is a configuration error
// reported immediately.
func WithNameTemplate(tmpl string) (RegistryOption, error) {
	t, err := template.New("schemaName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, &BuildError{
			Component: ComponentRegistry,
			Field:     "nameTemplate",
			Message:   "invalid schema name template",
			Cause:     err,
		}
	}
	var buf strings.Builder
	if err := t.Execute(&buf, nameContext{Type: "TestType", Package: "testpkg"}); err != nil {
		return nil, &BuildError{
			Component: ComponentRegistry,
			Field:     "nameTemplate",
			Message:   "schema name template execution failed",
			Cause:     err,
		}
	}
	return func(r *Registry) {
		r.namer.template = t
	}, nil
}

// templateFuncs returns the helpers available inside name templates.
func templateFuncs() template.FuncMap {
	// cases.Title replaces the deprecated strings.Title.
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascal":   toPascalCase,
		"camel":    toCamelCase,
		"snake":    toSnakeCase,
		"kebab":    toKebabCase,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"title":    titleCaser.String,
		"sanitize": sanitizeSchemaName,
	}
}
