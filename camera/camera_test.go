package camera

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func toMgl(g *gglm.Mat4) mgl32.Mat4 {

	var m mgl32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = g.Data[c][r]
		}
	}

	return m
}

// matApproxEqual compares elements with an absolute threshold
func matApproxEqual(a, b mgl32.Mat4) bool {

	for i := 0; i < len(a); i++ {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}

	return true
}

func newTestCamera() *Camera {

	pos := gglm.NewVec3(0, 10, 20)
	forward := gglm.NewVec3(0, 0, -1)
	worldUp := gglm.NewVec3(0, 1, 0)
	return NewPerspective(&pos, &forward, &worldUp, 0.1, 200, 45*gglm.Deg2Rad, 16.0/9.0)
}

func TestPerspectiveMatchesReference(t *testing.T) {

	cam := newTestCamera()

	expectedProj := mgl32.Perspective(45*gglm.Deg2Rad, 16.0/9.0, 0.1, 200)
	if !matApproxEqual(toMgl(&cam.ProjMat), expectedProj) {
		t.Fatalf("projection mismatch.\nGot: %v\nExpected: %v", toMgl(&cam.ProjMat), expectedProj)
	}

	expectedView := mgl32.LookAtV(mgl32.Vec3{0, 10, 20}, mgl32.Vec3{0, 10, 19}, mgl32.Vec3{0, 1, 0})
	if !matApproxEqual(toMgl(&cam.ViewMat), expectedView) {
		t.Fatalf("view mismatch.\nGot: %v\nExpected: %v", toMgl(&cam.ViewMat), expectedView)
	}
}

func TestViewProjection(t *testing.T) {

	cam := newTestCamera()
	vp := cam.ViewProjection()

	expected := toMgl(&cam.ProjMat).Mul4(toMgl(&cam.ViewMat))
	if !matApproxEqual(toMgl(&vp), expected) {
		t.Fatalf("view projection mismatch.\nGot: %v\nExpected: %v", toMgl(&vp), expected)
	}

	// The camera position is at the view space origin
	camPosView := toMgl(&cam.ViewMat).Mul4x1(mgl32.Vec4{0, 10, 20, 1})
	if camPosView.Vec3().Len() > eps {
		t.Fatalf("expected camera position to map to the origin, got %v", camPosView)
	}
}

func TestResizeWindow(t *testing.T) {

	cam := newTestCamera()
	cam.ResizeWindow(800, 800)
	if cam.AspectRatio != 1 {
		t.Fatalf("expected aspect ratio 1, got %f", cam.AspectRatio)
	}

	expectedProj := mgl32.Perspective(45*gglm.Deg2Rad, 1, 0.1, 200)
	if !matApproxEqual(toMgl(&cam.ProjMat), expectedProj) {
		t.Fatalf("projection was not updated after resize")
	}

	cam.ResizeWindow(0, 600)
	if cam.AspectRatio != 1 {
		t.Fatalf("expected zero sized resize to be ignored, but aspect ratio became %f", cam.AspectRatio)
	}
}

func TestUpdateRotation(t *testing.T) {

	cam := newTestCamera()

	// yaw=-90 degrees looks down -z
	cam.UpdateRotation(0, -90*gglm.Deg2Rad)
	if math.Abs(float64(cam.Forward.Z()+1)) > eps || math.Abs(float64(cam.Forward.X())) > eps {
		t.Fatalf("expected forward (0, 0, -1), got %v", cam.Forward.Data)
	}

	cam.UpdateRotation(30*gglm.Deg2Rad, 0)
	length := math.Sqrt(float64(cam.Forward.X()*cam.Forward.X() + cam.Forward.Y()*cam.Forward.Y() + cam.Forward.Z()*cam.Forward.Z()))
	if math.Abs(length-1) > eps {
		t.Fatalf("expected normalized forward, got length %f", length)
	}

	if cam.Forward.Y() <= 0 {
		t.Fatalf("expected positive pitch to look up, got %v", cam.Forward.Data)
	}
}

func TestOrthographicResizeKeepsHeight(t *testing.T) {

	pos := gglm.NewVec3(0, 0, 10)
	forward := gglm.NewVec3(0, 0, -1)
	worldUp := gglm.NewVec3(0, 1, 0)
	cam := NewOrthographic(&pos, &forward, &worldUp, 0.1, 100, -4, 4, 3, -3)
	if cam.Type != Type_Orthographic {
		t.Fatalf("expected an orthographic camera, got type %d", cam.Type)
	}

	// 6 units high at 2:1 gives 12 units wide, centered on x=0
	cam.ResizeWindow(1000, 500)
	if math.Abs(float64(cam.Left+6)) > eps || math.Abs(float64(cam.Right-6)) > eps {
		t.Fatalf("expected extents [-6, 6], got [%f, %f]", cam.Left, cam.Right)
	}

	if cam.Top != 3 || cam.Bottom != -3 {
		t.Fatalf("expected vertical extents to stay [-3, 3], got [%f, %f]", cam.Bottom, cam.Top)
	}
}
