package scene

import (
	"github.com/bloeys/nrender/camera"
	"github.com/bloeys/nrender/renderer"
)

type Skybox struct {
	Mesh     renderer.Mesh
	Material renderer.Material
	// Texture is bound to the environment slot every frame, so lit materials can sample it too
	Texture renderer.Texture
}

type Scene struct {
	Name string

	mainCamera      *camera.Camera
	defaultMaterial renderer.Material
	skybox          Skybox
	colorLUT        renderer.Texture

	objects     []*GameObject
	renderables []*RenderComponent
	rend        renderer.Render
}

// AddGameObject appends obj to the scene. Its render components are drawn after
// those of previously added objects
func (s *Scene) AddGameObject(obj *GameObject) {

	obj.scene = s
	s.objects = append(s.objects, obj)

	for _, c := range obj.Components {
		s.componentAdded(c)
	}
}

func (s *Scene) componentAdded(c Component) {
	if rc, ok := c.(*RenderComponent); ok {
		s.renderables = append(s.renderables, rc)
	}
}

func (s *Scene) GameObjects() []*GameObject {
	return s.objects
}

// FindGameObject returns the first object with the given name
func (s *Scene) FindGameObject(name string) *GameObject {

	for _, obj := range s.objects {
		if obj.Name == name {
			return obj
		}
	}

	return nil
}

// Renderables returns render components in scene order
func (s *Scene) Renderables() []*RenderComponent {
	return s.renderables
}

func (s *Scene) MainCamera() *camera.Camera {
	return s.mainCamera
}

func (s *Scene) SetMainCamera(cam *camera.Camera) {
	s.mainCamera = cam
}

func (s *Scene) DefaultMaterial() renderer.Material {
	return s.defaultMaterial
}

func (s *Scene) SetDefaultMaterial(mat renderer.Material) {
	s.defaultMaterial = mat
}

func (s *Scene) SkyboxTexture() renderer.Texture {
	return s.skybox.Texture
}

func (s *Scene) SetSkybox(skybox Skybox) {
	s.skybox = skybox
}

func (s *Scene) ColorLUT() renderer.Texture {
	return s.colorLUT
}

func (s *Scene) SetColorLUT(lut renderer.Texture) {
	s.colorLUT = lut
}

// Awake calls Awake on every component. Components may disable themselves here
func (s *Scene) Awake() {
	for _, obj := range s.objects {
		for _, c := range obj.Components {
			c.Awake()
		}
	}
}

// Update calls Update on every enabled component
func (s *Scene) Update(dt float32) {
	for _, obj := range s.objects {
		for _, c := range obj.Components {
			if c.IsEnabled() {
				c.Update(dt)
			}
		}
	}
}

// PreRender lets enabled components prepare data before any renderable is drawn
func (s *Scene) PreRender() {
	for _, obj := range s.objects {
		for _, c := range obj.Components {
			if pr, ok := c.(PreRenderer); ok && c.IsEnabled() {
				pr.PreRender()
			}
		}
	}
}

// DrawSkybox draws the skybox cube if the scene has one
func (s *Scene) DrawSkybox() {

	if s.skybox.Mesh == nil || s.skybox.Material == nil {
		return
	}

	s.rend.DrawCubemap(s.skybox.Mesh, s.skybox.Material)
}

func NewScene(name string, rend renderer.Render) *Scene {
	return &Scene{
		Name: name,
		rend: rend,
	}
}
