package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/attrs"
	"github.com/vk/transmute/internal/ctxlog"
	"github.com/vk/transmute/internal/fsutil"
	"github.com/vk/transmute/internal/registry"
)

// Loader parses transform manifests and registers their declarations.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadTransformsRecursively walks the manifests path for .hcl files and
// registers every transform block found, in file order. Each declaration
// goes through the same validate-then-finalize pipeline as programmatic
// registrations, so a malformed block fails the load with the pipeline's
// configuration error.
func (l *Loader) LoadTransformsRecursively(ctx context.Context, reg *registry.Registry, catalog *action.Catalog, manifestsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading transform manifests...", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", manifestsPath, "error", err)
		return err
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", manifestsPath)
		return nil
	}

	for _, filePath := range filePaths {
		hclFile, diags := l.parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}
		if err := l.registerFile(ctx, reg, catalog, hclFile, filePath); err != nil {
			return err
		}
		logger.Debug("Loaded transform declarations from manifest.", "file", filePath)
	}

	logger.Info("Transform manifests loaded.", "files", len(filePaths), "transforms_registered", reg.Len())
	return nil
}

func (l *Loader) registerFile(ctx context.Context, reg *registry.Registry, catalog *action.Catalog, file *hcl.File, filePath string) error {
	var m manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
	}

	for _, block := range m.Transforms {
		if err := l.registerBlock(ctx, reg, catalog, block); err != nil {
			return fmt.Errorf("transform %q in %s: %w", block.Name, filePath, err)
		}
	}
	return nil
}

func (l *Loader) registerBlock(ctx context.Context, reg *registry.Registry, catalog *action.Catalog, block *transformBlock) error {
	act, ok := catalog.ByName(block.Action)
	if !ok {
		return fmt.Errorf("no action named '%s' is registered", block.Action)
	}

	fromValues, err := blockAttributes(block.From)
	if err != nil {
		return fmt.Errorf("in 'from' block: %w", err)
	}
	toValues, err := blockAttributes(block.To)
	if err != nil {
		return fmt.Errorf("in 'to' block: %w", err)
	}

	params, err := parameterValues(block.Parameters)
	if err != nil {
		return err
	}

	return reg.RegisterTransform(ctx, func(d *registry.UntypedDraft) {
		fillContainer(d.From(), fromValues)
		fillContainer(d.To(), toValues)
		d.UseConfigured(act, func(c *registry.ActionConfiguration) {
			c.SetParams(params...)
		})
	})
}

// blockAttributes evaluates every attribute of a from/to block to a constant
// value. A nil block yields no attributes; the pipeline's validator rejects
// the resulting empty predicate with its own error.
func blockAttributes(block *attributeBlock) (map[string]cty.Value, error) {
	if block == nil {
		return nil, nil
	}
	hclAttrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	values := make(map[string]cty.Value, len(hclAttrs))
	for name, attr := range hclAttrs {
		value, valueDiags := attr.Expr.Value(nil)
		if valueDiags.HasErrors() {
			return nil, fmt.Errorf("attribute '%s': %w", name, valueDiags)
		}
		values[name] = value
	}
	return values, nil
}

// parameterValues evaluates the optional parameters expression to a list of
// opaque values. Absent or null parameters yield an empty list.
func parameterValues(expr hcl.Expression) ([]any, error) {
	if expr == nil {
		return nil, nil
	}
	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("in 'parameters': %w", diags)
	}
	if value.IsNull() {
		return nil, nil
	}
	if !value.Type().IsTupleType() && !value.Type().IsListType() {
		return nil, fmt.Errorf("'parameters' must be a list, got %s", value.Type().FriendlyName())
	}
	elems := value.AsValueSlice()
	params := make([]any, len(elems))
	for idx, elem := range elems {
		params[idx] = elem
	}
	return params, nil
}

func fillContainer(container *attrs.Container, values map[string]cty.Value) {
	for name, value := range values {
		container.Set(name, value)
	}
}
