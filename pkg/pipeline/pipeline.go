// Package pipeline runs a parameter script through assembly and meshing:
// script -> parameter set -> shell fields -> triangle meshes.
package pipeline

import (
	"errors"
	"log"

	"github.com/chazu/lvshell/pkg/anatomy"
	"github.com/chazu/lvshell/pkg/config"
	"github.com/chazu/lvshell/pkg/engine"
	"github.com/chazu/lvshell/pkg/field"
	"github.com/chazu/lvshell/pkg/kernel"
	"github.com/chazu/lvshell/pkg/kernel/sdfx"
	"github.com/chazu/lvshell/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to surfaces.
var colorPalette = []string{
	"#E74C3C", "#F39C12", "#9B59B6", "#4A90D9",
	"#2ECC71", "#1ABC9C", "#E67E22", "#3498DB",
}

// Pipeline owns a script engine and a geometry kernel.
type Pipeline struct {
	engine *engine.Engine
	kernel kernel.Kernel
	cfg    config.Config
}

// MeshData is the JSON-serializable mesh format handed to renderers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Surface  string    `json:"surface"`
	Color    string    `json:"color"`
}

// ErrorData is a JSON-serializable error.
type ErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// WarningData is a JSON-serializable advisory warning.
type WarningData struct {
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Result is the full output of one run.
type Result struct {
	Meshes   []MeshData    `json:"meshes"`
	Errors   []ErrorData   `json:"errors"`
	Warnings []WarningData `json:"warnings"`
}

// New creates a Pipeline with an engine and the sdfx kernel configured
// from cfg.
func New(cfg config.Config) *Pipeline {
	return NewWithKernel(cfg, sdfx.New(cfg.MeshCells))
}

// NewWithKernel creates a Pipeline that meshes with k.
func NewWithKernel(cfg config.Config, k kernel.Kernel) *Pipeline {
	if cfg.Prefix == "" {
		cfg.Prefix = anatomy.LeftVentricle
	}
	return &Pipeline{
		engine: engine.NewEngine().WithTimeout(cfg.EvalTimeout),
		kernel: k,
		cfg:    cfg,
	}
}

// Run evaluates source and meshes the configured structure. A script that
// sets no parameters produces an empty result.
func (p *Pipeline) Run(source string) Result {
	result := Result{
		Meshes:   []MeshData{},
		Errors:   []ErrorData{},
		Warnings: []WarningData{},
	}

	// Step 1: Evaluate the script into a parameter set.
	params, evalErrs, err := p.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, ErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	if len(params) == 0 {
		return result
	}

	for _, w := range engine.CheckParams(params, p.cfg.Prefix) {
		result.Warnings = append(result.Warnings, WarningData{Param: w.Param, Message: w.Message})
	}

	// Step 2: Assemble the shell fields.
	sp, err := anatomy.ParamsFromSet(params, p.cfg.Prefix)
	if err != nil {
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}

	// Step 3: Mesh every surface.
	meshes, err := tessellate.TessellateParams(sp, p.cfg.BoundsPadding, p.kernel)
	if err != nil {
		if !errors.Is(err, field.ErrInvalidParameter) {
			log.Printf("Tessellate error: %v", err)
		}
		result.Errors = append(result.Errors, ErrorData{Message: "tessellation failed: " + err.Error()})
		return result
	}

	// Step 4: Convert kernel meshes to the serializable format.
	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Surface:  m.Surface,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	return result
}
