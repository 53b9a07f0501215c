package physics

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/scene"
)

func TestApplyImpulse(t *testing.T) {

	rb := NewRigidBody(2)
	rb.ApplyImpulse(gglm.NewVec3(1, 0, -4))

	if rb.LinearVelocity != gglm.NewVec3(0.5, 0, -2) {
		t.Fatalf("expected velocity (0.5, 0, -2), got %v", rb.LinearVelocity.Data)
	}
}

func TestUpdateMovesOwner(t *testing.T) {

	obj := scene.NewGameObject("box")
	rb := NewRigidBody(1)
	rb.LinearDamping = 0.5
	obj.AddComponent(rb)

	rb.ApplyImpulse(gglm.NewVec3(2, 0, 0))
	rb.Update(0.5)

	if math.Abs(float64(obj.Position.X()-1)) > 1e-6 {
		t.Fatalf("expected owner x=1, got %f", obj.Position.X())
	}

	if math.Abs(float64(rb.LinearVelocity.X()-1.5)) > 1e-6 {
		t.Fatalf("expected damped velocity 1.5, got %f", rb.LinearVelocity.X())
	}

	found, ok := scene.GetComponent[*RigidBody](obj)
	if !ok || found != rb {
		t.Fatalf("expected to find the rigid body on its owner")
	}
}

func TestUpdateWithoutOwner(t *testing.T) {

	rb := NewRigidBody(1)
	rb.ApplyImpulse(gglm.NewVec3(1, 0, 0))
	rb.Update(1)

	if rb.LinearVelocity.X() != 1 {
		t.Fatalf("expected velocity to be untouched without an owner, got %f", rb.LinearVelocity.X())
	}
}

func TestNewRigidBodyRejectsZeroMass(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero mass")
		}
	}()

	NewRigidBody(0)
}
