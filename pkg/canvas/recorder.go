package canvas

// Recorder 是只记录调用的 Surface 实现
// 用于测试和无窗口的模拟运行
type Recorder struct {
	Width, Height int
	Circles       []Circle
	Clears        int
}

// NewRecorder 创建指定尺寸的记录器
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Clear 记录一次清屏并丢弃已记录的圆
func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
}

// FillCircle 原样记录绘制调用，不做任何钳制
func (r *Recorder) FillCircle(c Circle) {
	r.Circles = append(r.Circles, c)
}

// Size 返回记录器尺寸
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Resize 修改记录器尺寸
func (r *Recorder) Resize(width, height int) {
	r.Width, r.Height = width, height
}
