package physics

// Body is anything the space can simulate or collide against.
type Body interface {
	CollisionShape() Shape
}

// RigidBody pairs a shape with a mass. A zero mass makes the body static.
type RigidBody struct {
	Shape Shape
	Mass  float32
	// UserData lets callers map hits back to their own objects.
	UserData any
}

func NewRigidBody(shape Shape, mass float32) *RigidBody {
	return &RigidBody{Shape: shape, Mass: mass}
}

func (b *RigidBody) CollisionShape() Shape {
	return b.Shape
}

func (b *RigidBody) IsStatic() bool {
	return b.Mass == 0
}
