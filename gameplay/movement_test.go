package gameplay

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/physics"
	"github.com/bloeys/nrender/scene"
	"github.com/veandco/go-sdl2/sdl"
)

type fakeKeys map[sdl.Keycode]bool

func (fk fakeKeys) KeyDown(kc sdl.Keycode) bool {
	return fk[kc]
}

func newPlayer(keys fakeKeys) (*scene.GameObject, *physics.RigidBody, *Movement) {

	obj := scene.NewGameObject("player")
	body := physics.NewRigidBody(1)
	mv := NewMovement()
	mv.Keys = keys

	obj.AddComponent(body)
	obj.AddComponent(mv)
	mv.Awake()

	return obj, body, mv
}

func TestMovementDisablesWithoutBody(t *testing.T) {

	obj := scene.NewGameObject("no body")
	mv := NewMovement()
	mv.Keys = fakeKeys{sdl.K_a: true}
	obj.AddComponent(mv)

	mv.Awake()
	if mv.IsEnabled() {
		t.Fatalf("expected movement to disable itself without a rigid body")
	}

	// A disabled movement is never updated by a scene, but updating it directly must still be safe
	mv.Update(0.016)
	if mv.IsMoving {
		t.Fatalf("expected no movement without a body")
	}
}

func TestMovementImpulses(t *testing.T) {

	tests := []struct {
		name             string
		keys             fakeKeys
		startVelocityX   float32
		expectedVelocity float32
		expectedMoving   bool
	}{
		{name: "idle", keys: fakeKeys{}, expectedVelocity: 0, expectedMoving: false},
		{name: "left", keys: fakeKeys{sdl.K_a: true}, expectedVelocity: -0.1, expectedMoving: true},
		{name: "right", keys: fakeKeys{sdl.K_d: true}, expectedVelocity: 0.1, expectedMoving: true},
		{name: "both cancel", keys: fakeKeys{sdl.K_a: true, sdl.K_d: true}, expectedVelocity: 0, expectedMoving: true},
		{name: "left at limit still applies", keys: fakeKeys{sdl.K_a: true}, startVelocityX: 20, expectedVelocity: 19.9, expectedMoving: true},
		{name: "left over limit", keys: fakeKeys{sdl.K_a: true}, startVelocityX: 20.5, expectedVelocity: 20.5, expectedMoving: false},
		{name: "right over limit", keys: fakeKeys{sdl.K_d: true}, startVelocityX: -21, expectedVelocity: -21, expectedMoving: false},
	}

	for _, tt := range tests {

		obj, body, mv := newPlayer(tt.keys)
		body.LinearVelocity = gglm.NewVec3(tt.startVelocityX, 0, 0)

		mv.Update(0.016)

		if math.Abs(float64(body.LinearVelocity.X()-tt.expectedVelocity)) > 1e-5 {
			t.Errorf("%s: expected velocity x=%f, got %f", tt.name, tt.expectedVelocity, body.LinearVelocity.X())
		}

		if mv.IsMoving != tt.expectedMoving {
			t.Errorf("%s: expected IsMoving=%v, got %v", tt.name, tt.expectedMoving, mv.IsMoving)
		}

		expectedRot := gglm.Vec3{}
		if tt.expectedMoving {
			expectedRot = gglm.NewVec3(90, 0, 0)
		}

		if obj.Rotation != expectedRot {
			t.Errorf("%s: expected rotation %v, got %v", tt.name, expectedRot.Data, obj.Rotation.Data)
		}
	}
}

func TestMovementResetsIsMoving(t *testing.T) {

	keys := fakeKeys{sdl.K_d: true}
	_, _, mv := newPlayer(keys)

	mv.Update(0.016)
	if !mv.IsMoving {
		t.Fatalf("expected to be moving while D is held")
	}

	keys[sdl.K_d] = false
	mv.Update(0.016)
	if mv.IsMoving {
		t.Fatalf("expected IsMoving to reset once no key is held")
	}
}

func TestMovementJSON(t *testing.T) {

	mv := NewMovement()
	mv.IsMoving = true

	data, err := mv.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `{"moving":true}` {
		t.Fatalf("unexpected json: %s", data)
	}

	decoded, err := MovementFromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decoded.IsMoving || decoded.Impulse != DefaultMovementImpulse {
		t.Fatalf("expected moving movement with default impulse, got %+v", decoded)
	}

	if _, err := MovementFromJSON([]byte("{")); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}
