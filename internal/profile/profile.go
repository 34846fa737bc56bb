// Package profile loads HCL scan profiles: a declarative alternative to
// spelling every option on the command line. A profile never overrides an
// explicit flag; the CLI layer merges the two with flags winning.
package profile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/confsift/confsift/internal/ctxlog"
	"github.com/confsift/confsift/internal/project"
)

// Profile is the decoded scan profile.
type Profile struct {
	Roots   []string
	Format  string
	Workers int
	RunID   string
	// Kinds maps additional conf file base names to conf kinds, letting a
	// deployment route nonstandard filenames to the built-in projectors.
	Kinds map[string]project.Kind
}

// scanBlock mirrors the `scan` block of a profile file.
type scanBlock struct {
	Roots   []string          `hcl:"roots,optional"`
	Format  string            `hcl:"format,optional"`
	Workers int               `hcl:"workers,optional"`
	RunID   string            `hcl:"run_id,optional"`
	Kinds   map[string]string `hcl:"kinds,optional"`
}

// fileRoot decodes the top level of a profile file.
type fileRoot struct {
	Scan   *scanBlock `hcl:"scan,block"`
	Remain hcl.Body   `hcl:",remain"`
}

// Load parses and validates the HCL profile at path.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}
	if root.Scan == nil {
		return nil, fmt.Errorf("profile %s contains no scan block", path)
	}

	p := &Profile{
		Roots:   root.Scan.Roots,
		Format:  root.Scan.Format,
		Workers: root.Scan.Workers,
		RunID:   root.Scan.RunID,
	}
	if len(root.Scan.Kinds) > 0 {
		p.Kinds = make(map[string]project.Kind, len(root.Scan.Kinds))
		for name, raw := range root.Scan.Kinds {
			kind, err := project.ParseKind(raw)
			if err != nil {
				return nil, fmt.Errorf("profile %s: kinds[%q]: %w", path, name, err)
			}
			p.Kinds[name] = kind
		}
	}

	logger.Debug("Scan profile loaded.", "path", path, "roots", len(p.Roots), "kind_overrides", len(p.Kinds))
	return p, nil
}
