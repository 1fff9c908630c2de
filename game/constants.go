package game

const (
	// DefaultFieldOfView is the vertical field of view of the camera, in degrees.
	DefaultFieldOfView = float32(60)
	DefaultNearClip    = float32(0.1)
	DefaultFarClip     = float32(200)
	// CameraEyeOffset lifts the rendered eye above the simulated player position.
	CameraEyeOffset = float32(0.5)

	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720

	DefaultRayStep     = float32(0.1)
	DefaultRayDistance = float32(30)
	// RayHeadroom extends a column's hit volume above its top face.
	RayHeadroom = float32(0.5)
)
