package timing

import "time"

var (
	startTime      time.Time
	frameStartTime time.Time

	dt float32 = 0.01

	// Fps is averaged over one second windows
	fpsWindowStart  time.Time
	fpsWindowFrames int
	avgFps          float32
)

// Init should be called once before the first frame
func Init() {
	startTime = time.Now()
	frameStartTime = startTime
	fpsWindowStart = startTime
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {

	now := time.Now()
	dt = float32(now.Sub(frameStartTime).Seconds())

	fpsWindowFrames++
	windowDur := now.Sub(fpsWindowStart)
	if windowDur >= time.Second {
		avgFps = float32(fpsWindowFrames) / float32(windowDur.Seconds())
		fpsWindowFrames = 0
		fpsWindowStart = now
	}
}

// DT is the duration of the last frame in seconds
func DT() float32 {
	return dt
}

// ElapsedTime returns seconds since Init was called
func ElapsedTime() float32 {
	return float32(time.Since(startTime).Seconds())
}

func GetAvgFPS() float32 {
	return avgFps
}

// SceneClock tracks time since a scene was loaded. DeltaTime is the global frame delta.
type SceneClock struct {
	loadTime time.Time
	now      func() time.Time
}

func (sc *SceneClock) SceneLoaded() {
	sc.loadTime = sc.now()
}

func (sc *SceneClock) TimeSinceSceneLoad() float32 {
	return float32(sc.now().Sub(sc.loadTime).Seconds())
}

func (sc *SceneClock) DeltaTime() float32 {
	return DT()
}

func NewSceneClock() *SceneClock {
	return newSceneClockWithNow(time.Now)
}

func newSceneClockWithNow(now func() time.Time) *SceneClock {
	sc := &SceneClock{now: now}
	sc.SceneLoaded()
	return sc
}
