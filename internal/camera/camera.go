// Package camera maps image-plane positions to primary rays.
package camera

import (
	"fmt"

	"whitted-raytracer/internal/mathutil"
)

// Camera is a pinhole at Eye looking down its local -Z axis at an image
// plane Distance units away.
type Camera struct {
	Eye         mathutil.Vec3
	Distance    float64
	Orientation mathutil.Mat3
}

// Default is the reference eye at the origin, 100 units from the plane,
// looking down -Z.
func Default() Camera {
	return Camera{Distance: 100, Orientation: mathutil.Mat3Identity()}
}

// Oriented returns a copy of c turned by yaw and pitch degrees.
func (c Camera) Oriented(yawDeg, pitchDeg float64) Camera {
	c.Orientation = mathutil.YawPitch(yawDeg, pitchDeg)
	return c
}

// Ray returns the primary ray through image-plane point (x, y).
func (c Camera) Ray(x, y float64) (mathutil.Ray, error) {
	return mathutil.NewRay(c.Eye, c.Orientation.MulVec3(mathutil.Vec3{x, y, -c.Distance}))
}

// Plane is the rectangular image plane split into Divisions × Divisions
// cells. Cell (0,0) is at the bottom-left corner.
type Plane struct {
	XMin, XMax float64
	YMin, YMax float64
	Divisions  int
}

// DefaultPlane is the reference 100 × 100 plane in 600 cells per side.
func DefaultPlane() Plane {
	return Plane{XMin: -50, XMax: 50, YMin: -50, YMax: 50, Divisions: 600}
}

// Validate checks the plane spans a positive area.
func (p Plane) Validate() error {
	if p.Divisions < 1 {
		return fmt.Errorf("camera: plane needs at least one division, got %d", p.Divisions)
	}
	if !(p.XMax > p.XMin) || !(p.YMax > p.YMin) {
		return fmt.Errorf("camera: empty plane [%g,%g]x[%g,%g]", p.XMin, p.XMax, p.YMin, p.YMax)
	}
	return nil
}

// CellSize returns the width and height of one cell.
func (p Plane) CellSize() (float64, float64) {
	n := float64(p.Divisions)
	return (p.XMax - p.XMin) / n, (p.YMax - p.YMin) / n
}

// CellOrigin returns the bottom-left corner of cell (i, j).
func (p Plane) CellOrigin(i, j int) (float64, float64) {
	w, h := p.CellSize()
	return p.XMin + float64(i)*w, p.YMin + float64(j)*h
}
