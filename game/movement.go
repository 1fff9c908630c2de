package game

const (
	DefaultWalkSpeed     = float32(5.0)
	DefaultJumpSpeed     = float32(6.0)
	DefaultGravity       = float32(9.8)
	DefaultCapsuleRadius = float32(0.25)
	DefaultEyeHeight     = float32(1.8)
	DefaultGroundLevel   = float32(1.0)
	// DefaultFootOffset is how far below the player position the collision probe sits.
	DefaultFootOffset       = float32(0.9)
	DefaultMouseSensitivity = float32(0.0025)

	// MaxPitch keeps the view from flipping over the poles.
	MaxPitch = float32(1.4)

	PushEpsilon    = float32(0.001)
	LandingEpsilon = float32(0.01)

	MaxDeltaTime      = float32(0.05)
	FallbackDeltaTime = float32(1.0 / 60.0)
)
