// Package physics has a minimal rigid body that integrates impulses into its owner's position.
// There is no collision detection.
package physics

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/assert"
	"github.com/bloeys/nrender/scene"
)

type RigidBody struct {
	scene.ComponentBase

	Mass           float32
	LinearVelocity gglm.Vec3
	// LinearDamping is the fraction of velocity lost per second, in [0, 1]
	LinearDamping float32
}

func (rb *RigidBody) GetLinearVelocity() gglm.Vec3 {
	return rb.LinearVelocity
}

// ApplyImpulse changes velocity by impulse/mass
func (rb *RigidBody) ApplyImpulse(impulse gglm.Vec3) {

	invMass := 1 / rb.Mass
	rb.LinearVelocity.Data[0] += impulse.Data[0] * invMass
	rb.LinearVelocity.Data[1] += impulse.Data[1] * invMass
	rb.LinearVelocity.Data[2] += impulse.Data[2] * invMass
}

// Update moves the owner by velocity*dt, then applies damping
func (rb *RigidBody) Update(dt float32) {

	owner := rb.GameObject()
	if owner == nil {
		return
	}

	owner.Position.Data[0] += rb.LinearVelocity.Data[0] * dt
	owner.Position.Data[1] += rb.LinearVelocity.Data[1] * dt
	owner.Position.Data[2] += rb.LinearVelocity.Data[2] * dt

	damping := 1 - rb.LinearDamping*dt
	if damping < 0 {
		damping = 0
	}

	rb.LinearVelocity.Data[0] *= damping
	rb.LinearVelocity.Data[1] *= damping
	rb.LinearVelocity.Data[2] *= damping
}

func NewRigidBody(mass float32) *RigidBody {

	assert.T(mass > 0, "rigid body mass must be positive but got %f", mass)
	return &RigidBody{
		Mass: mass,
	}
}
