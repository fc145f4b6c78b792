// Package scenefile loads scene descriptions from XML.
package scenefile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/texture"
)

// warnings receives non-fatal problems such as unresolved textures.
var warnings io.Writer = os.Stderr

// Parse reads a scene file. Texture names are looked up through res; a nil
// res, or a name res cannot resolve, leaves the primitive on its base color.
func Parse(path string, res texture.Resolver) (*scene.Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	sc, err := Decode(raw, res)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", path, err)
	}
	return sc, nil
}

// Decode parses an in-memory scene description.
func Decode(raw []byte, res texture.Resolver) (*scene.Scene, error) {
	var doc xmlScene
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	prims := make([]scene.Primitive, 0, len(doc.Objects))
	for i, obj := range doc.Objects {
		if obj.Name == "" {
			obj.Name = fmt.Sprintf("%s#%d", obj.Type, i)
		}
		p, err := buildPrimitive(obj, res)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, obj.Type, err)
		}
		prims = append(prims, p)
	}
	return scene.New(doc.Name, prims...)
}

// charsetReader handles the legacy single-byte encodings scene files tend to
// be saved in by Windows editors.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", label)
}

func buildPrimitive(obj xmlObject, res texture.Resolver) (scene.Primitive, error) {
	p := scene.Primitive{Name: obj.Name, Material: scene.DefaultMaterial(), Checker: scene.DefaultChecker()}
	a := attrs{}

	switch strings.ToLower(obj.Type) {
	case "sphere":
		p.Shape = a.shape(geometry.NewSphere(a.vec("Center", obj.Center), a.num("Radius", obj.Radius, 0)))
	case "polygon":
		p.Shape = a.shape(geometry.NewPolygon(a.vertices(obj.Vertices)...))
	case "cylinder":
		p.Shape = a.shape(geometry.NewCylinder(a.vec("Center", obj.Center),
			a.num("Radius", obj.Radius, 0), a.num("Height", obj.Height, 0), a.flag("Cap", obj.Cap, false)))
	case "cone":
		p.Shape = a.shape(geometry.NewCone(a.vec("Center", obj.Center),
			a.num("Radius", obj.Radius, 0), a.num("Height", obj.Height, 0)))
	default:
		return p, fmt.Errorf("unknown object type %q", obj.Type)
	}

	m := &p.Material
	if obj.Color != "" {
		m.Color = a.vec("Color", obj.Color)
	}
	m.Shininess = a.num("Shininess", obj.Shininess, m.Shininess)
	m.Specular = a.flag("Specular", obj.Specular, m.Specular)
	if obj.Reflection != "" {
		*m = m.WithReflection(a.num("Reflection", obj.Reflection, 0))
	}
	if obj.Refraction != "" {
		*m = m.WithRefraction(a.num("Refraction", obj.Refraction, 0), a.num("RefractiveIndex", obj.RefractiveIndex, 1))
	}
	if obj.Transparency != "" {
		*m = m.WithTransparency(a.num("Transparency", obj.Transparency, 0))
	}

	shading, err := scene.ParseShading(strings.ToLower(obj.Shading))
	if err != nil {
		return p, err
	}
	p.Shading = shading
	p.Checker.Size = a.num("CheckerSize", obj.CheckerSize, p.Checker.Size)
	if obj.CheckerEven != "" {
		p.Checker.Even = a.vec("CheckerEven", obj.CheckerEven)
	}
	if obj.CheckerOdd != "" {
		p.Checker.Odd = a.vec("CheckerOdd", obj.CheckerOdd)
	}

	if a.err != nil {
		return p, a.err
	}

	if shading == scene.Textured && obj.Texture != "" && res != nil {
		img, err := res.Resolve(obj.Texture)
		if err != nil {
			fmt.Fprintf(warnings, "Warning: %s: %v, using base color\n", p.Name, err)
		} else {
			p.Texture = img
		}
	}
	return p, nil
}

// attrs parses attribute strings and keeps the first error.
type attrs struct {
	err error
}

func (a *attrs) fail(name, raw string, err error) {
	if a.err == nil {
		a.err = fmt.Errorf("attribute %s=%q: %w", name, raw, err)
	}
}

func (a *attrs) num(name, raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		a.fail(name, raw, err)
		return def
	}
	return f
}

func (a *attrs) flag(name, raw string, def bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		a.fail(name, raw, err)
		return def
	}
	return b
}

func (a *attrs) vec(name, raw string) mathutil.Vec3 {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	if len(fields) != 3 {
		a.fail(name, raw, fmt.Errorf("want 3 components, got %d", len(fields)))
		return mathutil.Vec3{}
	}
	var v mathutil.Vec3
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			a.fail(name, raw, err)
			return mathutil.Vec3{}
		}
		v[i] = x
	}
	return v
}

func (a *attrs) vertices(raw string) []mathutil.Vec3 {
	var vs []mathutil.Vec3
	for _, part := range strings.Split(raw, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		vs = append(vs, a.vec("Vertices", part))
	}
	return vs
}

// shape swallows constructor errors into a.err so the caller reports the
// first problem only.
func (a *attrs) shape(s geometry.Shape, err error) geometry.Shape {
	if err != nil && a.err == nil {
		a.err = err
	}
	if err != nil {
		return nil
	}
	return s
}
