package gltfdoc

// PerspectiveDef is CameraDef's "perspective" projection object.
type PerspectiveDef struct {
	YFov        float64  `json:"yfov"`
	AspectRatio *float64 `json:"aspectRatio,omitempty"`
	ZNear       float64  `json:"znear"`
	ZFar        *float64 `json:"zfar,omitempty"`
}

// OrthographicDef is CameraDef's "orthographic" projection object.
type OrthographicDef struct {
	XMag  float64 `json:"xmag"`
	YMag  float64 `json:"ymag"`
	ZNear float64 `json:"znear"`
	ZFar  float64 `json:"zfar"`
}

// CameraDef is one entry of json.cameras.
type CameraDef struct {
	Common

	Type         string           `json:"type"`
	Perspective  *PerspectiveDef  `json:"perspective,omitempty"`
	Orthographic *OrthographicDef `json:"orthographic,omitempty"`
}
