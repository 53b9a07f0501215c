package renderlayer

import (
	"reflect"
	"sort"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/camera"
	"github.com/bloeys/nrender/materials"
	"github.com/bloeys/nrender/renderer"
	"github.com/bloeys/nrender/scene"
	"github.com/bloeys/nrender/uniforms"
)

// Scene is what the layer needs from the scene it draws. *scene.Scene implements it
type Scene interface {
	MainCamera() *camera.Camera
	// Renderables returns render components in draw order
	Renderables() []*scene.RenderComponent
	DefaultMaterial() renderer.Material
	SkyboxTexture() renderer.Texture
	ColorLUT() renderer.Texture
	PreRender()
	DrawSkybox()
}

// Clock supplies frame timing. *timing.SceneClock implements it
type Clock interface {
	TimeSinceSceneLoad() float32
	DeltaTime() float32
}

var _ Scene = &scene.Scene{}

// Layer is a forward render pass. Every frame it clears its target, uploads the frame uniforms once,
// then draws each renderable with its material and instance uniforms, and finally the skybox.
//
// Individual renderables never fail the pass: ones without a mesh are skipped, and ones without
// a material use the scene default material or are skipped if there is none.
type Layer struct {
	clearColor     gglm.Vec4
	renderFlags    uniforms.RenderFlags
	blitEnabled    bool
	sortByMaterial bool

	target        renderer.RenderTarget
	rend          renderer.Render
	frameStore    *uniforms.FrameStore
	instanceStore *uniforms.InstanceStore
	binder        Binder
	clock         Clock

	drawList       []*scene.RenderComponent
	firstMatIndex  map[renderer.Material]int
	identityMatrix gglm.Mat4
}

func (l *Layer) OnRender(s Scene) {

	width, height := l.target.Size()
	l.rend.SetViewport(int32(width), int32(height))
	l.target.Bind()
	l.rend.Clear(&l.clearColor)

	cam := s.MainCamera()
	if cam == nil {
		return
	}

	viewProj := cam.ViewProjection()

	l.rend.EnableDepthTest()
	l.rend.EnableBackFaceCulling()

	if env := s.SkyboxTexture(); !isNil(env) {
		env.Bind(uint32(materials.TextureSlot_Environment))
	}

	if lut := s.ColorLUT(); !isNil(lut) {
		lut.Bind(uint32(materials.TextureSlot_ColorLUT))
	}

	s.PreRender()
	l.frameStore.Bind()
	l.instanceStore.Bind()
	l.frameStore.Update(cam.Projection(), cam.View(), &cam.Pos, l.clock.TimeSinceSceneLoad(), l.clock.DeltaTime(), l.renderFlags)

	l.binder.Reset()
	for _, rc := range l.buildDrawList(s) {

		l.binder.Use(rc.Material)

		model := &l.identityMatrix
		if owner := rc.GameObject(); owner != nil {
			transform := owner.Transform()
			model = &transform
		}

		l.instanceStore.Update(model, &viewProj)
		rc.Mesh.Draw()
	}

	s.DrawSkybox()

	// The target stays bound so later passes can read or blit it
	l.rend.UnbindVertexArray()
}

// buildDrawList returns renderables that have a mesh and a (possibly default) material.
// A renderable without a material gets the scene default material assigned.
func (l *Layer) buildDrawList(s Scene) []*scene.RenderComponent {

	defaultMat := s.DefaultMaterial()
	if isNil(defaultMat) {
		defaultMat = nil
	}

	l.drawList = l.drawList[:0]
	for _, rc := range s.Renderables() {

		if isNil(rc.Mesh) {
			continue
		}

		if isNil(rc.Material) {

			if defaultMat == nil {
				continue
			}

			rc.Material = defaultMat
		}

		l.drawList = append(l.drawList, rc)
	}

	if l.sortByMaterial {
		l.groupByMaterial()
	}

	return l.drawList
}

// isNil reports whether v is nil or an interface holding a nil pointer, e.g. a (*meshes.Mesh)(nil)
func isNil(v any) bool {

	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// groupByMaterial stable sorts the draw list so renderables sharing a material are adjacent,
// with materials ordered by first appearance
func (l *Layer) groupByMaterial() {

	clear(l.firstMatIndex)
	for i, rc := range l.drawList {
		if _, ok := l.firstMatIndex[rc.Material]; !ok {
			l.firstMatIndex[rc.Material] = i
		}
	}

	sort.SliceStable(l.drawList, func(i, j int) bool {
		return l.firstMatIndex[l.drawList[i].Material] < l.firstMatIndex[l.drawList[j].Material]
	})
}

// OnWindowResize resizes the target and the main camera projection. Sizes with a zero (or negative)
// dimension, such as a minimized window, are ignored.
func (l *Layer) OnWindowResize(s Scene, oldWidth, oldHeight, newWidth, newHeight int32) {

	if newWidth <= 0 || newHeight <= 0 {
		return
	}

	l.target.Resize(uint32(newWidth), uint32(newHeight))

	if cam := s.MainCamera(); cam != nil {
		cam.ResizeWindow(newWidth, newHeight)
	}
}

// PrimaryFramebuffer returns the target the layer draws into
func (l *Layer) PrimaryFramebuffer() renderer.RenderTarget {
	return l.target
}

// RenderOutput is the result of the pass, which is the primary framebuffer
func (l *Layer) RenderOutput() renderer.RenderTarget {
	return l.target
}

func (l *Layer) ClearColor() gglm.Vec4 {
	return l.clearColor
}

func (l *Layer) SetClearColor(color gglm.Vec4) {
	l.clearColor = color
}

func (l *Layer) RenderFlags() uniforms.RenderFlags {
	return l.renderFlags
}

func (l *Layer) SetRenderFlags(flags uniforms.RenderFlags) {
	l.renderFlags = flags
}

func (l *Layer) IsBlitEnabled() bool {
	return l.blitEnabled
}

func (l *Layer) SetBlitEnabled(enabled bool) {
	l.blitEnabled = enabled
}

func (l *Layer) FrameStore() *uniforms.FrameStore {
	return l.frameStore
}

func (l *Layer) InstanceStore() *uniforms.InstanceStore {
	return l.instanceStore
}

func New(cfg Config, target renderer.RenderTarget, rend renderer.Render, frameBuf, instanceBuf uniforms.Buffer, clock Clock) *Layer {
	return &Layer{
		clearColor:     cfg.ClearColorVec(),
		renderFlags:    cfg.RenderFlags,
		blitEnabled:    cfg.BlitToScreen,
		sortByMaterial: cfg.SortByMaterial,

		target:        target,
		rend:          rend,
		frameStore:    uniforms.NewFrameStore(frameBuf),
		instanceStore: uniforms.NewInstanceStore(instanceBuf),
		clock:         clock,

		firstMatIndex:  make(map[renderer.Material]int),
		identityMatrix: gglm.NewMat4Diag(1),
	}
}
