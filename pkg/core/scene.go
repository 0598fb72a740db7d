package core

// ObjectID indexes into Scene.Objects; insertion order is stable and is the
// identity a hit reports back to the caller.
type ObjectID uint32

// ShapeKind tags which canonical object-space shape a Shape describes.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapePlane
	ShapeTriangle
	ShapeSquare
	ShapeCylinder
)

// Shape is the canonical, object-space definition of a primitive. All of a
// Shape's actual placement in the world comes from the Transform on the
// Object that carries it.
type Shape struct {
	Kind ShapeKind
}

var (
	Sphere   = Shape{Kind: ShapeSphere}
	Plane    = Shape{Kind: ShapePlane}
	Triangle = Shape{Kind: ShapeTriangle}
	Square   = Shape{Kind: ShapeSquare}
	Cylinder = Shape{Kind: ShapeCylinder}
)

// Medium describes the participating volume a ray travels through between
// hits: its index of refraction (for Snell's law at a Transparent surface)
// and its per-channel volumetric absorption colour (Beer-Lambert).
type Medium struct {
	IndexOfRefraction float32
	VolumetricColor   Color
}

var Vacuum = Medium{IndexOfRefraction: 1.0, VolumetricColor: White}

// MaterialKind tags which of the five material behaviours a Material has.
type MaterialKind int

const (
	MaterialDiffuse MaterialKind = iota
	MaterialMirror
	MaterialTransparent
	MaterialDiffuseMirror
	MaterialFixed
)

// MaterialType closes over the per-kind parameters: DiffuseMirror carries
// its diffuse fraction F, Fixed carries whether it's visible only to camera
// rays (CameraOnly), and the rest carry nothing extra.
type MaterialType struct {
	Kind       MaterialKind
	F          float32 // DiffuseMirror fraction in [0, 1]
	CameraOnly bool    // Fixed: visible only to primary (camera) rays
}

func DiffuseType() MaterialType    { return MaterialType{Kind: MaterialDiffuse} }
func MirrorType() MaterialType     { return MaterialType{Kind: MaterialMirror} }
func TransparentType() MaterialType { return MaterialType{Kind: MaterialTransparent} }
func DiffuseMirrorType(f float32) MaterialType {
	return MaterialType{Kind: MaterialDiffuseMirror, F: f}
}
func FixedType(cameraOnly bool) MaterialType {
	return MaterialType{Kind: MaterialFixed, CameraOnly: cameraOnly}
}

// Material fully describes a surface: its behaviour, its diffuse/specular
// colour, what it emits, and the media on either side of it (relevant only
// to Transparent surfaces, where a ray crosses between Inside and Outside).
type Material struct {
	MaterialType MaterialType
	Albedo       Color
	Emission     Color
	Inside       Medium
	Outside      Medium
}

// Object places a Shape in the world via Transform and assigns it a Material.
type Object struct {
	Shape     Shape
	Material  Material
	Transform Transform
}

// Camera describes the pinhole camera: horizontal field of view (radians),
// its placement in the world, and the medium the eye itself sits in.
type Camera struct {
	FovHorizontal float32
	Transform     Transform
	Medium        Medium
}

// Scene is the complete, immutable input to a render: every object (indexed
// by its position in Objects, which is its stable ObjectID), the emission
// seen by rays that escape to infinity, and the camera.
type Scene struct {
	Objects     []Object
	SkyEmission Color
	Camera      Camera
}

func (s Scene) Object(id ObjectID) Object {
	return s.Objects[id]
}
