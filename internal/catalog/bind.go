package catalog

import (
	"fmt"

	"github.com/san-kum/sonarlab/internal/formula"
)

// Bind builds positional arguments from named values. Parameters missing
// from named take their default sample value; unknown names are rejected.
func Bind(s *formula.Spec, named map[string]float64) ([]float64, error) {
	return BindWith(s, nil, named)
}

// BindRoles fills parameters by role (temperature, salinity, depth, ...)
// and leaves the rest at their defaults. Roles the spec does not have are
// ignored, so one set of environmental conditions can feed any formula.
func BindRoles(s *formula.Spec, roles map[string]float64) []float64 {
	args := s.Defaults()
	for i, p := range s.Params {
		if v, ok := roles[p.Role]; ok && p.Unit == RoleUnit(p.Role) {
			args[i] = v
		}
	}
	return args
}

// RoleUnit is the unit environmental presets use for a role. Parameters in
// another unit (depth in km, pressure in bar) are not filled from presets.
func RoleUnit(role string) string {
	switch role {
	case "temperature":
		return "°C"
	case "salinity":
		return "ppt"
	case "depth":
		return "m"
	case "latitude":
		return "deg"
	case "acidity":
		return "pH"
	default:
		return ""
	}
}

// BindWith starts from roles (or the defaults when roles is nil) and then
// applies named values, rejecting unknown names.
func BindWith(s *formula.Spec, roles, named map[string]float64) ([]float64, error) {
	args := s.Defaults()
	if roles != nil {
		args = BindRoles(s, roles)
	}
	for name, v := range named {
		i := s.ParamIndex(name)
		if i < 0 {
			return nil, &formula.EvalError{
				Formula: s.Name,
				Param:   name,
				Wrapped: fmt.Errorf("%w: no such parameter", formula.ErrInvalidInput),
			}
		}
		args[i] = v
	}
	return args, nil
}
