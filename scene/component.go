package scene

// Component is behaviour attached to a GameObject. Implementations embed ComponentBase
// and override the hooks they need.
type Component interface {
	// Awake is called once after the scene is set up, before the first Update
	Awake()
	Update(dt float32)
	IsEnabled() bool
	SetEnabled(enabled bool)
	GameObject() *GameObject

	attach(owner *GameObject)
}

// PreRenderer is implemented by components that prepare data before the scene is drawn
type PreRenderer interface {
	PreRender()
}

type ComponentBase struct {
	owner    *GameObject
	disabled bool
}

func (c *ComponentBase) Awake() {}

func (c *ComponentBase) Update(dt float32) {}

func (c *ComponentBase) IsEnabled() bool {
	return !c.disabled
}

func (c *ComponentBase) SetEnabled(enabled bool) {
	c.disabled = !enabled
}

// GameObject returns the owner, or nil if the component was never added to an object
func (c *ComponentBase) GameObject() *GameObject {
	return c.owner
}

func (c *ComponentBase) attach(owner *GameObject) {
	c.owner = owner
}

// GetComponent returns the first component of type T on the object
func GetComponent[T Component](g *GameObject) (T, bool) {

	for _, c := range g.Components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}

	var zero T
	return zero, false
}
