package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/ramsesgo/internal/config"
	"github.com/vk/ramsesgo/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the values behind the `env` variable. Defaults to
	// os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL case-file loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses and decodes a single HCL case file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	caseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("error resolving directory of %s: %w", path, err)
	}
	environ := os.Environ
	if l.Environ != nil {
		environ = l.Environ
	}

	var root caseFile
	diags = gohcl.DecodeBody(file.Body, newEvalContext(caseDir, environ()), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if root.Case == nil {
		return nil, errors.New("case file " + path + " has no \"case\" block")
	}

	model := &config.Model{
		Cleanup: translateCleanup(root.Cleanup),
		Case:    translateCase(root.Case),
	}
	logger.Debug("HCL loading complete.", "case", model.Case.Name, "data_files", len(model.Case.Data), "cleanup_globs", len(model.Cleanup))
	return model, nil
}
