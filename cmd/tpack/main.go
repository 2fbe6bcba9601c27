package main

// Compiles a described module graph: classifies every import, computes the
// chunk-wide async fixed point, splices the runtime-support statements into
// each module's program body, and prints the rewritten programs. The graph
// comes from a YAML manifest instead of parsed source; parsing is not this
// tool's job.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tpack/tpack/internal/ast"
	"github.com/tpack/tpack/internal/cache"
	"github.com/tpack/tpack/internal/codegen"
	"github.com/tpack/tpack/internal/esm"
	"github.com/tpack/tpack/internal/js_ast"
	"github.com/tpack/tpack/internal/js_printer"
	"github.com/tpack/tpack/internal/linker"
	"github.com/tpack/tpack/internal/logger"
	"github.com/tpack/tpack/internal/modgraph"
	"github.com/tpack/tpack/internal/resolver"
)

type options struct {
	Outdir    string `short:"o" long:"outdir" description:"Write one .js file per module instead of printing to stdout"`
	StringIDs bool   `long:"string-ids" description:"Assign string module ids instead of numbers"`
	Verbose   bool   `short:"v" long:"verbose" description:"Log what the compiler is doing"`

	Args struct {
		Manifest string `positional-arg-name:"manifest" description:"YAML module-graph manifest"`
	} `positional-args:"yes" required:"yes"`
}

type manifest struct {
	// Import externals as ESM instead of requiring them
	ImportExternals bool `yaml:"importExternals"`

	// Whether the target runtime supports require() for externals
	CommonJSExternals *bool `yaml:"commonjsExternals"`

	Externals []string         `yaml:"externals"`
	Ignored   []string         `yaml:"ignored"`
	Modules   []manifestModule `yaml:"modules"`
}

type manifestModule struct {
	Path          string           `yaml:"path"`
	Script        bool             `yaml:"script"`
	TopLevelAwait bool             `yaml:"topLevelAwait"`
	Imports       []manifestImport `yaml:"imports"`
}

type manifestImport struct {
	Request      string `yaml:"request"`
	ChunkingType string `yaml:"chunkingType"`
	Transition   string `yaml:"transition"`
	Export       string `yaml:"export"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	zapConfig := zap.NewProductionConfig()
	if opts.Verbose {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zlog, err := zapConfig.Build()
	if err != nil {
		logger.PrintErrorToStderr(err.Error())
		os.Exit(1)
	}
	defer zlog.Sync()

	if err := run(opts, zlog); err != nil {
		logger.PrintErrorToStderr(err.Error())
		os.Exit(1)
	}
}

func run(opts options, zlog *zap.Logger) error {
	data, err := os.ReadFile(opts.Args.Manifest)
	if err != nil {
		return err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%s: %s", opts.Args.Manifest, err)
	}

	commonJSExternals := true
	if m.CommonJSExternals != nil {
		commonJSExternals = *m.CommonJSExternals
	}

	env := &modgraph.Environment{CommonJSExternals: commonJSExternals}
	ctx := modgraph.NewChunkingContext(env, opts.StringIDs)

	graphResolver := modgraph.NewResolver()
	for _, specifier := range m.Externals {
		graphResolver.Externals[specifier] = true
	}
	for _, specifier := range m.Ignored {
		graphResolver.Ignored[specifier] = true
	}

	modules := make([]*modgraph.Module, 0, len(m.Modules))
	for _, entry := range m.Modules {
		kind := js_ast.ProgramModule
		if entry.Script {
			kind = js_ast.ProgramScript
		}
		module := &modgraph.Module{
			Path:          entry.Path,
			TopLevelAwait: entry.TopLevelAwait,
			Program:       &js_ast.Program{Kind: kind},
		}
		graphResolver.Modules[entry.Path] = module
		modules = append(modules, module)
	}

	// Resolve answers are pure per reference, so share them across the
	// async fixed point and code generation
	res := cache.NewResolveCache(graphResolver)

	descriptors := make([]*esm.AsyncModule, 0, len(modules))
	for i, module := range modules {
		descriptor := &esm.AsyncModule{
			Placeable:        module,
			HasTopLevelAwait: module.TopLevelAwait,
			ImportExternals:  m.ImportExternals,
		}
		for _, imp := range m.Modules[i].Imports {
			var part *resolver.ModulePart
			if imp.Export != "" {
				part = &resolver.ModulePart{Export: imp.Export}
			}
			descriptor.AddReference(&esm.EsmAssetReference{
				Origin:  modgraph.Origin{Path: module.Path},
				Request: resolver.Request{Specifier: imp.Request, Kind: ast.ImportStmt},
				Annotations: esm.ImportAnnotations{
					Transition:   imp.Transition,
					ChunkingType: imp.ChunkingType,
				},
				ExportPart:      part,
				ImportExternals: m.ImportExternals,
			})
		}
		descriptors = append(descriptors, descriptor)
	}

	info, err := linker.ComputeAsyncModuleInfo(ctx, res, descriptors)
	if err != nil {
		return err
	}
	zlog.Info("computed async fixed point",
		zap.Int("modules", len(descriptors)),
		zap.Int("async", info.Len()))

	for i, descriptor := range descriptors {
		module := modules[i]

		var gens []codegen.CodeGeneration
		for _, ref := range descriptor.References {
			gen, err := ref.CodeGeneration(ctx, res)
			if err != nil {
				return fmt.Errorf("%s: %s: %s", module.Path, ref, err)
			}
			gens = append(gens, gen)
		}

		gen, err := descriptor.CodeGeneration(ctx, res, info)
		if err != nil {
			return fmt.Errorf("%s: %s", module.Path, err)
		}
		gens = append(gens, gen)

		codegen.Apply(module.Program, gens)

		js := js_printer.Print(module.Program)
		moduleOptions := descriptor.ModuleOptions(info)
		zlog.Debug("compiled module",
			zap.String("path", module.Path),
			zap.Bool("topLevelAwait", moduleOptions != nil && moduleOptions.HasTopLevelAwait),
			zap.Int("statements", len(module.Program.Stmts)))

		if opts.Outdir != "" {
			name := filepath.Join(opts.Outdir, filepath.Base(module.Path))
			if filepath.Ext(name) != ".js" {
				name += ".js"
			}
			if err := os.MkdirAll(opts.Outdir, 0755); err != nil {
				return err
			}
			if err := os.WriteFile(name, js, 0644); err != nil {
				return err
			}
		} else {
			fmt.Printf("// %s\n%s\n", module.Path, js)
		}
	}

	return nil
}
