package anatomy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chazu/lvshell/pkg/field"
)

// ErrMissingParameter is wrapped when a parameter set lacks a required key.
var ErrMissingParameter = errors.New("missing parameter")

// LeftVentricle is the parameter prefix of the left-ventricle instantiation.
const LeftVentricle = "lv"

// ParamSet is a read-only mapping from parameter name to value, as
// supplied by a configuration source.
type ParamSet map[string]float64

// Key suffixes read by ParamsFromSet, in reporting order.
const (
	keyCX    = "cx"
	keyCY    = "cy"
	keyCZ    = "cz"
	keyAEndo = "a_endo"
	keyBEndo = "b_endo"
	keyCEndo = "c_endo"
	keyWall  = "wall"
	keyZ0    = "z0"
	keyZ1    = "z1"
)

var keySuffixes = []string{keyCX, keyCY, keyCZ, keyAEndo, keyBEndo, keyCEndo, keyWall, keyZ0, keyZ1}

// Key returns the full parameter name for a prefix and suffix, e.g.
// Key("lv", "wall") == "lv_wall".
func Key(prefix, suffix string) string {
	return prefix + "_" + suffix
}

// RequiredKeys returns the keys ParamsFromSet reads for prefix.
func RequiredKeys(prefix string) []string {
	keys := make([]string, len(keySuffixes))
	for i, s := range keySuffixes {
		keys[i] = Key(prefix, s)
	}
	return keys
}

// Params is the typed shape description of one anatomical structure.
// A, B and C are the endocardial semi-axes; the epicardium inflates each
// of them by Wall. Z0 and Z1 bound the structure along its local z axis.
type Params struct {
	Center field.Vec3 `json:"center"`
	A      float64    `json:"a"`
	B      float64    `json:"b"`
	C      float64    `json:"c"`
	Wall   float64    `json:"wall"`
	Z0     float64    `json:"z0"`
	Z1     float64    `json:"z1"`
}

// ParamsFromSet reads the structure identified by prefix out of set.
// Every absent key is reported in a single error wrapping
// ErrMissingParameter.
func ParamsFromSet(set ParamSet, prefix string) (Params, error) {
	var missing []string
	get := func(suffix string) float64 {
		k := Key(prefix, suffix)
		v, ok := set[k]
		if !ok {
			missing = append(missing, k)
		}
		return v
	}

	p := Params{
		Center: field.Vec3{X: get(keyCX), Y: get(keyCY), Z: get(keyCZ)},
		A:      get(keyAEndo),
		B:      get(keyBEndo),
		C:      get(keyCEndo),
		Wall:   get(keyWall),
		Z0:     get(keyZ0),
		Z1:     get(keyZ1),
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Params{}, fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(missing, ", "))
	}
	return p, nil
}

// Set writes p back into a ParamSet under prefix.
func (p Params) Set(prefix string) ParamSet {
	return ParamSet{
		Key(prefix, keyCX):    p.Center.X,
		Key(prefix, keyCY):    p.Center.Y,
		Key(prefix, keyCZ):    p.Center.Z,
		Key(prefix, keyAEndo): p.A,
		Key(prefix, keyBEndo): p.B,
		Key(prefix, keyCEndo): p.C,
		Key(prefix, keyWall):  p.Wall,
		Key(prefix, keyZ0):    p.Z0,
		Key(prefix, keyZ1):    p.Z1,
	}
}

// Bounds returns the axis-aligned box enclosing both segments: the larger
// ellipsoid's extent, clipped along z to [Z0, Z1]. The z range is inverted
// when the slab misses the ellipsoid.
func (p Params) Bounds() (min, max field.Vec3) {
	w := math.Max(p.Wall, 0)
	ea, eb, ec := p.A+w, p.B+w, p.C+w
	zlo := p.Center.Z + math.Max(-ec, p.Z0)
	zhi := p.Center.Z + math.Min(ec, p.Z1)
	min = field.Vec3{X: p.Center.X - ea, Y: p.Center.Y - eb, Z: zlo}
	max = field.Vec3{X: p.Center.X + ea, Y: p.Center.Y + eb, Z: zhi}
	return min, max
}
