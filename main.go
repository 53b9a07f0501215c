package main

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nrender/assets"
	"github.com/bloeys/nrender/camera"
	"github.com/bloeys/nrender/engine"
	"github.com/bloeys/nrender/gameplay"
	"github.com/bloeys/nrender/input"
	"github.com/bloeys/nrender/logging"
	"github.com/bloeys/nrender/materials"
	"github.com/bloeys/nrender/meshes"
	"github.com/bloeys/nrender/physics"
	"github.com/bloeys/nrender/renderer"
	"github.com/bloeys/nrender/renderer/rend3dgl"
	"github.com/bloeys/nrender/renderlayer"
	"github.com/bloeys/nrender/scene"
	"github.com/bloeys/nrender/timing"
	"github.com/bloeys/nrender/uniforms"
	"github.com/schollz/progressbar/v3"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	WINDOW_TITLE  = "nRender"
	WINDOW_WIDTH  = 1280
	WINDOW_HEIGHT = 720

	CONFIG_PATH    = "./nrender.yaml"
	DEFAULT_LUT    = "./res/luts/identity.cube"
	CAM_FOLLOW_LAG = 4
	CAM_LOOK_SPEED = 0.005
)

var (
	camOffset = gglm.NewVec3(0, 4, 12)
)

type Game struct {
	Win   *engine.Window
	Rend  *rend3dgl.Rend3DGL
	Cfg   renderlayer.Config
	Layer *renderlayer.GLLayer
	Scene *scene.Scene
	Clock *timing.SceneClock

	player *scene.GameObject

	litShaderMat   *materials.Material
	brightMat      *materials.Material
	skyboxMat      *materials.Material
	cubeMesh       *meshes.Mesh
	sphereMesh     *meshes.Mesh
	skyboxCubemap  *assets.Cubemap
	colorLUT       *assets.Texture3D
	colorLUTFailed bool
	shownFps       float32

	camPitch float32
	camYaw   float32
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	cfg, err := renderlayer.LoadConfig(CONFIG_PATH)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	rend := rend3dgl.NewRend3DGL()
	window, err := engine.CreateOpenGLWindowCentered(WINDOW_TITLE, WINDOW_WIDTH, WINDOW_HEIGHT, engine.WindowFlags_RESIZABLE|engine.WindowFlags_ALLOW_HIGHDPI, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}

	if err := engine.SetVSync(true); err != nil {
		logging.WarnLog.Println("Failed to enable vsync. Err:", err)
	}
	engine.SetSrgbFramebuffer(true)

	game := &Game{
		Win:   window,
		Rend:  rend,
		Cfg:   cfg,
		Clock: timing.NewSceneClock(),
	}
	window.ResizeCallbacks = append(window.ResizeCallbacks, game.handleWindowResize)

	engine.Run(game, window)
}

func (g *Game) Init() {

	assets.InitDefaultTextures()

	width, height := g.Win.Size()
	g.Layer = renderlayer.NewGL(g.Cfg, uint32(width), uint32(height), g.Rend, g.Clock)

	g.loadAssets()
	g.buildScene()

	if g.colorLUTFailed {
		flags := g.Layer.RenderFlags()
		flags.Remove(uniforms.RenderFlags_EnableColorCorrection)
		g.Layer.SetRenderFlags(flags)
	}

	g.Scene.Awake()
	g.Clock.SceneLoaded()
	logging.InfoLog.Printf("Scene '%s' loaded with %d objects\n", g.Scene.Name, len(g.Scene.GameObjects()))
}

func (g *Game) loadAssets() {

	steps := []struct {
		desc string
		load func()
	}{
		{desc: "materials", load: g.loadMaterials},
		{desc: "meshes", load: g.loadMeshes},
		{desc: "skybox", load: g.loadSkybox},
		{desc: "color lut", load: g.loadColorLUT},
	}

	bar := progressbar.Default(int64(len(steps)), "loading")
	defer bar.Close()

	for _, step := range steps {
		bar.Describe("loading " + step.desc)
		step.load()
		bar.Add(1)
	}
}

func (g *Game) loadMaterials() {

	var err error
	g.litShaderMat, err = materials.NewMaterial("Lit mat", "./res/shaders/forward-lit.glsl")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create lit material. Err:", err)
	}
	g.litShaderMat.FloatParams["material.shininess"] = 32
	g.litShaderMat.Vec4Params["tint"] = gglm.NewVec4(1, 1, 1, 1)

	g.brightMat, err = materials.NewMaterial("Bright mat", "./res/shaders/forward-lit.glsl")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create bright material. Err:", err)
	}
	g.brightMat.FloatParams["material.shininess"] = 128
	g.brightMat.Vec4Params["tint"] = gglm.NewVec4(1, 0.6, 0.2, 1)

	g.skyboxMat, err = materials.NewMaterial("Skybox mat", "./res/shaders/skybox.glsl")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create skybox material. Err:", err)
	}

	diffuse, err := assets.LoadTexture("./res/textures/container-diffuse.png", &assets.TextureLoadOptions{GenMipMaps: true})
	if err != nil {
		logging.WarnLog.Println("Container texture not found, using default diffuse. Err:", err)
		return
	}
	g.litShaderMat.DiffuseTex = diffuse.TexID
}

func (g *Game) loadMeshes() {

	g.cubeMesh = meshes.NewCubeMesh("Cube")

	var err error
	g.sphereMesh, err = meshes.NewMesh("Sphere", "./res/models/sphere.fbx", 0)
	if err != nil {
		logging.WarnLog.Println("Sphere model not found, using a cube instead. Err:", err)
		g.sphereMesh = g.cubeMesh
	}
}

func (g *Game) loadSkybox() {

	cmap, err := assets.LoadCubemapTextures(
		"./res/textures/sb-right.jpg", "./res/textures/sb-left.jpg",
		"./res/textures/sb-top.jpg", "./res/textures/sb-bottom.jpg",
		"./res/textures/sb-front.jpg", "./res/textures/sb-back.jpg",
		&assets.TextureLoadOptions{},
	)
	if err != nil {
		logging.WarnLog.Println("Skybox textures not found, scene will have no skybox. Err:", err)
		return
	}

	g.skyboxCubemap = &cmap
}

func (g *Game) loadColorLUT() {

	path := g.Cfg.ColorLUTPath
	if path == "" {
		path = DEFAULT_LUT
	}

	lut, err := assets.LoadColorLUT(path)
	if err != nil {
		logging.WarnLog.Println("Failed to load color LUT, color correction is disabled. Err:", err)
		g.colorLUTFailed = true
		return
	}

	g.colorLUT = &lut
}

func (g *Game) buildScene() {

	g.Scene = scene.NewScene("Demo", g.Rend)
	g.Scene.SetDefaultMaterial(g.litShaderMat)

	width, height := g.Win.Size()
	camPos := gglm.NewVec3(0, 4, 12)
	camForward := gglm.NewVec3(0, 0, -1)
	worldUp := gglm.NewVec3(0, 1, 0)
	cam := camera.NewPerspective(&camPos, &camForward, &worldUp, 0.1, 200, 45*gglm.Deg2Rad, float32(width)/float32(height))
	g.camPitch, g.camYaw = -15*gglm.Deg2Rad, -90*gglm.Deg2Rad
	cam.UpdateRotation(g.camPitch, g.camYaw)
	g.Scene.SetMainCamera(cam)

	if g.skyboxCubemap != nil {
		g.Scene.SetSkybox(scene.Skybox{
			Mesh:     g.cubeMesh,
			Material: g.skyboxMat,
			Texture:  g.skyboxCubemap,
		})
	}

	if g.colorLUT != nil {

		g.Scene.SetColorLUT(g.colorLUT)
		for _, mat := range []*materials.Material{g.litShaderMat, g.brightMat} {
			mat.Vec4Params["u_ColorLUTScale"] = g.colorLUT.CoordScale
			mat.Vec4Params["u_ColorLUTOffset"] = g.colorLUT.CoordOffset
		}
	}

	ground := scene.NewGameObject("Ground")
	ground.Position = gglm.NewVec3(0, -1, 0)
	ground.Scale = gglm.NewVec3(40, 0.2, 10)
	ground.AddComponent(scene.NewRenderComponent(g.cubeMesh, g.litShaderMat))
	g.Scene.AddGameObject(ground)

	// Two pillars share the lit material and a third uses the bright one
	pillarMats := []renderer.Material{g.litShaderMat, g.litShaderMat, g.brightMat}
	for i, mat := range pillarMats {
		pillar := scene.NewGameObject("Pillar")
		pillar.Position = gglm.NewVec3(float32(i*6-6), 1, -3)
		pillar.Scale = gglm.NewVec3(1, 3, 1)
		pillar.AddComponent(scene.NewRenderComponent(g.cubeMesh, mat))
		g.Scene.AddGameObject(pillar)
	}

	g.player = scene.NewGameObject("Player")
	g.player.AddComponent(scene.NewRenderComponent(g.sphereMesh, nil))

	body := physics.NewRigidBody(0.05)
	body.LinearDamping = 0.8
	g.player.AddComponent(body)
	g.player.AddComponent(gameplay.NewMovement())
	g.Scene.AddGameObject(g.player)
}

func (g *Game) handleWindowResize(oldWidth, oldHeight, newWidth, newHeight int32) {
	g.Layer.OnWindowResize(g.Scene, oldWidth, oldHeight, newWidth, newHeight)
}

func (g *Game) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_c) {
		flags := g.Layer.RenderFlags()
		if flags.Has(uniforms.RenderFlags_EnableColorCorrection) {
			flags.Remove(uniforms.RenderFlags_EnableColorCorrection)
		} else if !g.colorLUTFailed {
			flags.Set(uniforms.RenderFlags_EnableColorCorrection)
		}
		g.Layer.SetRenderFlags(flags)
	}

	g.Scene.Update(timing.DT())
	g.updateCamera()
}

// updateCamera eases the camera towards a fixed offset from the player. Dragging
// with the right mouse button looks around
func (g *Game) updateCamera() {

	cam := g.Scene.MainCamera()

	if input.MouseDown(sdl.BUTTON_RIGHT) {

		xDelta, yDelta := input.GetMouseMotion()
		g.camYaw += float32(xDelta) * CAM_LOOK_SPEED
		g.camPitch -= float32(yDelta) * CAM_LOOK_SPEED

		// Looking straight up or down flips the view
		g.camPitch = min(max(g.camPitch, -89*gglm.Deg2Rad), 89*gglm.Deg2Rad)
		cam.UpdateRotation(g.camPitch, g.camYaw)
	}

	t := CAM_FOLLOW_LAG * timing.DT()
	if t > 1 {
		t = 1
	}

	for i := 0; i < 3; i++ {
		target := g.player.Position.Data[i] + camOffset.Data[i]
		cam.Pos.Data[i] += (target - cam.Pos.Data[i]) * t
	}

	cam.Update()
}

func (g *Game) Render() {

	g.Layer.OnRender(g.Scene)

	width, height := g.Win.Size()
	g.Layer.Blit(width, height)
}

// FrameEnd shows the average fps in the window title whenever it changes
func (g *Game) FrameEnd() {

	fps := timing.GetAvgFPS()
	if fps == g.shownFps {
		return
	}

	g.shownFps = fps
	g.Win.SDLWin.SetTitle(fmt.Sprintf("%s (%.0f fps)", WINDOW_TITLE, fps))
}

func (g *Game) DeInit() {

	g.Layer.Delete()
	g.cubeMesh.Delete()
	if g.sphereMesh != g.cubeMesh {
		g.sphereMesh.Delete()
	}

	g.litShaderMat.Delete()
	g.brightMat.Delete()
	g.skyboxMat.Delete()

	if g.skyboxCubemap != nil {
		g.skyboxCubemap.Delete()
	}

	if g.colorLUT != nil {
		g.colorLUT.Delete()
	}

	g.Win.Destroy()
}
