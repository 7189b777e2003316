package graph

// CameraType is "perspective" or "orthographic".
type CameraType string

const (
	CameraPerspective  CameraType = "perspective"
	CameraOrthographic CameraType = "orthographic"
)

// Camera carries one of the two glTF projection variants; only the
// fields relevant to Type are meaningful.
type Camera struct {
	Common

	Type CameraType

	ZNear float64
	ZFar  float64 // 0 means "infinite" for perspective, per glTF

	YFov        float64 // perspective
	AspectRatio float64 // perspective, 0 == unset

	XMag float64 // orthographic
	YMag float64 // orthographic

	handle Handle
}

func (c *Camera) Handle() Handle { return c.handle }

// NewCamera allocates a camera and appends it to Root.Cameras.
func (r *Root) NewCamera(name string, typ CameraType) *Camera {
	c := &Camera{Common: Common{Name: name}, Type: typ}
	c.handle = Handle{Kind: KindCamera, Index: uint32(len(r.Cameras))}
	r.Cameras = append(r.Cameras, c)
	return c
}
