package fixedgl

import "math"

// MaxLights is the number of light slots a Context provides.
const MaxLights = 2

// Light describes one light source.
//
// Position follows the fixed-function convention: W == 0 means a directional light
// shining from direction XYZ; W != 0 is a positional light. It is stored in eye
// coordinates, transformed by the modelview matrix current at SetLight time.
type Light struct {
	Ambient  Color
	Diffuse  Color
	Specular Color
	Position Vec4
}

// DefaultLight returns the settings of light 0 in a fresh fixed-function context.
func DefaultLight() Light {
	return Light{
		Ambient:  Black,
		Diffuse:  White,
		Specular: White,
		Position: V4(0, 0, 1, 0),
	}
}

// Material is the front-face surface description used while lighting is enabled.
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Emission  Color
	Shininess float32 // 0..128
}

// DefaultMaterial returns the initial fixed-function material.
func DefaultMaterial() Material {
	return Material{
		Ambient:  RGB(0.2, 0.2, 0.2),
		Diffuse:  RGB(0.8, 0.8, 0.8),
		Specular: Black,
		Emission: Black,
	}
}

// globalAmbient is the scene ambient term of the light model.
var globalAmbient = RGB(0.2, 0.2, 0.2)

// shade computes the lit color of a vertex at eye-space position p with unit normal n.
// The viewer is treated as infinitely far along +Z.
func shade(p, n Vec3, m Material, lights []Light, enabled []bool) Color {
	c := m.Emission.Add(globalAmbient.Mul(m.Ambient))
	for i, l := range lights {
		if !enabled[i] {
			continue
		}
		var ldir Vec3
		if l.Position.W == 0 {
			ldir = l.Position.XYZ().Normalize()
		} else {
			ldir = l.Position.XYZ().Scale(1 / l.Position.W).Sub(p).Normalize()
		}
		c = c.Add(l.Ambient.Mul(m.Ambient))

		ndotl := n.Dot(ldir)
		if ndotl <= 0 {
			continue
		}
		c = c.Add(l.Diffuse.Mul(m.Diffuse).Scale(ndotl))

		h := ldir.Add(V3(0, 0, 1)).Normalize()
		if ndoth := n.Dot(h); ndoth > 0 {
			spec := float32(math.Pow(float64(ndoth), float64(m.Shininess)))
			c = c.Add(l.Specular.Mul(m.Specular).Scale(spec))
		}
	}
	c.A = m.Diffuse.A
	return c
}
