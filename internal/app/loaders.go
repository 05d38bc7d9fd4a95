package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/ramsesgo/internal/config"
	"github.com/vk/ramsesgo/internal/hcl"
	"github.com/vk/ramsesgo/internal/yamlcase"
)

// coreLoaders maps case-file extensions to the loader that reads them.
var coreLoaders = map[string]func() config.Loader{
	".hcl":  func() config.Loader { return hcl.NewLoader() },
	".yaml": func() config.Loader { return yamlcase.NewLoader() },
	".yml":  func() config.Loader { return yamlcase.NewLoader() },
}

// LoaderFor picks the case-file loader from the file extension.
func LoaderFor(path string) (config.Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	newLoader, ok := coreLoaders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported case file %q: expected .hcl, .yaml or .yml", path)
	}
	return newLoader(), nil
}
