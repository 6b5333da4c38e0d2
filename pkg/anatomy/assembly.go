package anatomy

import (
	"fmt"

	"github.com/chazu/lvshell/pkg/field"
)

// Surface names used as keys of Fields.Map.
const (
	Endo = "endo"
	Epi  = "epi"
	Myo  = "myo"
)

// Surfaces lists the surface names in a stable order.
var Surfaces = []string{Endo, Epi, Myo}

// Fields holds the three fields of one anatomical shell.
type Fields struct {
	Endo field.ScalarField // inner cavity
	Epi  field.ScalarField // outer envelope
	Myo  field.ScalarField // wall: inside Epi and outside Endo
}

// Map returns the fields keyed by surface name.
func (f Fields) Map() map[string]field.ScalarField {
	return map[string]field.ScalarField{
		Endo: f.Endo,
		Epi:  f.Epi,
		Myo:  f.Myo,
	}
}

// Get returns the field for a surface name, or nil.
func (f Fields) Get(surface string) field.ScalarField {
	switch surface {
	case Endo:
		return f.Endo
	case Epi:
		return f.Epi
	case Myo:
		return f.Myo
	}
	return nil
}

// Build constructs the shell described by p.
//
// The epicardium adds Wall to every endocardial semi-axis. This only
// approximates a constant-thickness wall and is kept as is. Wall is not
// checked; a negative value yields an epicardium inside the endocardium
// and an empty myocardium.
func Build(p Params) (Fields, error) {
	endo, err := field.TruncatedEllipsoidSegment(p.A, p.B, p.C, p.Z0, p.Z1, p.Center)
	if err != nil {
		return Fields{}, fmt.Errorf("endocardium: %w", err)
	}
	epi, err := field.TruncatedEllipsoidSegment(p.A+p.Wall, p.B+p.Wall, p.C+p.Wall, p.Z0, p.Z1, p.Center)
	if err != nil {
		return Fields{}, fmt.Errorf("epicardium: %w", err)
	}
	return Fields{
		Endo: endo,
		Epi:  epi,
		Myo:  field.Difference(epi, endo),
	}, nil
}

// MakeStructureFields reads the structure named by prefix from set and
// returns its endo, epi and myo fields keyed by surface name.
func MakeStructureFields(set ParamSet, prefix string) (map[string]field.ScalarField, error) {
	p, err := ParamsFromSet(set, prefix)
	if err != nil {
		return nil, err
	}
	fs, err := Build(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	return fs.Map(), nil
}

// MakeLVFields is MakeStructureFields for the left ventricle.
func MakeLVFields(set ParamSet) (map[string]field.ScalarField, error) {
	return MakeStructureFields(set, LeftVentricle)
}
