package gameplay

import (
	"encoding/json"
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/input"
	"github.com/bloeys/nrender/physics"
	"github.com/bloeys/nrender/scene"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	DefaultMovementImpulse float32 = 0.1

	// Impulses stop being applied in a direction once the body moves faster than this along x
	maxMoveVelocity float32 = 20
)

// KeySource reports held keys. The input package is the default source
type KeySource interface {
	KeyDown(kc sdl.Keycode) bool
}

type inputKeys struct{}

func (inputKeys) KeyDown(kc sdl.Keycode) bool {
	return input.KeyDown(kc)
}

// Movement pushes its owner's rigid body along x while A or D are held
type Movement struct {
	scene.ComponentBase

	IsMoving bool
	Impulse  float32
	Keys     KeySource

	body *physics.RigidBody
}

// Awake disables the component if its owner has no rigid body
func (m *Movement) Awake() {

	owner := m.GameObject()
	if owner == nil {
		m.SetEnabled(false)
		return
	}

	body, ok := scene.GetComponent[*physics.RigidBody](owner)
	if !ok {
		m.SetEnabled(false)
		return
	}

	m.body = body
}

func (m *Movement) Update(dt float32) {

	m.IsMoving = false
	if m.body == nil {
		return
	}

	if m.Keys.KeyDown(sdl.K_a) && m.body.GetLinearVelocity().X() <= maxMoveVelocity {
		m.move(-m.Impulse)
	}

	if m.Keys.KeyDown(sdl.K_d) && m.body.GetLinearVelocity().X() >= -maxMoveVelocity {
		m.move(m.Impulse)
	}
}

func (m *Movement) move(impulseX float32) {
	m.body.ApplyImpulse(gglm.NewVec3(impulseX, 0, 0))
	m.IsMoving = true
	m.GameObject().SetRotation(gglm.NewVec3(90, 0, 0))
}

type movementJSON struct {
	Moving bool `json:"moving"`
}

func (m *Movement) ToJSON() ([]byte, error) {
	return json.Marshal(movementJSON{Moving: m.IsMoving})
}

func MovementFromJSON(data []byte) (*Movement, error) {

	var mj movementJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return nil, fmt.Errorf("failed to decode movement: %w", err)
	}

	m := NewMovement()
	m.IsMoving = mj.Moving
	return m, nil
}

func NewMovement() *Movement {
	return &Movement{
		Impulse: DefaultMovementImpulse,
		Keys:    inputKeys{},
	}
}
