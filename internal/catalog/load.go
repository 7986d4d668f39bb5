package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
	rootschemas "github.com/jonathan/resume-matcher/schemas"
)

// DefaultSource names the embedded catalog in errors and logs.
const DefaultSource = "embedded:roles.json"

//go:embed roles.json
var defaultCatalog []byte

var validate = validator.New()

// file is the on-disk layout of a catalog data file.
type file struct {
	Version string `json:"version"`
	Roles   []Role `json:"roles"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(DefaultSource, defaultCatalog)
}

// Load reads a catalog data file. An empty path selects the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return Parse(path, data)
}

// Parse validates raw catalog JSON against the role catalog schema and builds a Catalog.
// Role order in the document is preserved.
func Parse(source string, data []byte) (*Catalog, error) {
	if err := schemas.ValidateBytes(rootschemas.RoleCatalogFile, rootschemas.RoleCatalog, data); err != nil {
		return nil, &LoadError{Path: source, Cause: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, &LoadError{Path: source, Cause: fmt.Errorf("failed to parse catalog JSON: %w", err)}
	}

	c, err := New(f.Roles)
	if err != nil {
		return nil, &LoadError{Path: source, Cause: err}
	}
	return c, nil
}

// validateRoles checks every role has a name and a non-empty skill list, role
// names are unique, and skill names are unique within their role.
func validateRoles(roles []Role) error {
	if len(roles) == 0 {
		return errors.New("catalog has no roles")
	}

	seenRoles := make(map[string]struct{}, len(roles))
	for i, r := range roles {
		if err := validate.Struct(r); err != nil {
			return &ErrInvalidRole{Index: i, Name: r.Name, Message: describeValidation(err)}
		}
		if strings.TrimSpace(r.Name) == "" {
			return &ErrInvalidRole{Index: i, Message: "name is blank"}
		}
		if _, dup := seenRoles[r.Name]; dup {
			return &ErrDuplicateRole{Name: r.Name}
		}
		seenRoles[r.Name] = struct{}{}

		seenSkills := make(map[string]struct{}, len(r.Skills))
		for _, skill := range r.Skills {
			if parsing.Normalize(skill) == "" {
				return &ErrInvalidRole{Index: i, Name: r.Name, Message: fmt.Sprintf("skill %q has no alphanumeric content", skill)}
			}
			key := strings.ToLower(strings.TrimSpace(skill))
			if _, dup := seenSkills[key]; dup {
				return &ErrDuplicateSkill{Role: r.Name, Skill: skill}
			}
			seenSkills[key] = struct{}{}
		}
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
