package meter_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/meter"
	"github.com/gogpu/meter/recording"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func newMeter(t *testing.T, w, h int, maxValue float64, opts ...meter.Option) (*meter.Meter, *recording.Canvas) {
	t.Helper()
	c := recording.NewCanvas(w, h)
	m, err := meter.New(c, maxValue, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m, c
}

// runToEnd steps the transition until it finishes and returns the number
// of frames painted.
func runToEnd(t *testing.T, m *meter.Meter) int {
	t.Helper()
	n := 0
	for m.Animating() {
		if err := m.Step(); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
		n++
		if n > 1000 {
			t.Fatal("transition does not finish")
		}
	}
	return n
}

// fillSweeps returns the angular length of every fill stroke (the second
// stroke of each track/fill pair).
func fillSweeps(t *testing.T, c *recording.Canvas) []float64 {
	t.Helper()
	strokes := c.Strokes()
	if len(strokes)%2 != 0 {
		t.Fatalf("got %d strokes, want track/fill pairs", len(strokes))
	}
	var out []float64
	for i := 1; i < len(strokes); i += 2 {
		out = append(out, strokes[i].Path[0].Sweep())
	}
	return out
}

func TestNewValidation(t *testing.T) {
	c := recording.NewCanvas(100, 100)
	tests := []struct {
		name     string
		canvas   meter.Canvas
		maxValue float64
		want     error
	}{
		{"nil canvas", nil, 100, meter.ErrNilCanvas},
		{"zero max", c, 0, meter.ErrInvalidMaxValue},
		{"negative max", c, -5, meter.ErrInvalidMaxValue},
		{"NaN max", c, math.NaN(), meter.ErrInvalidMaxValue},
		{"infinite max", c, math.Inf(1), meter.ErrInvalidMaxValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := meter.New(tt.canvas, tt.maxValue)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("New() returned a meter with an error")
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	m, _ := newMeter(t, 200, 200, 100)

	if m.Value() != 0 || m.PreviousValue() != 0 {
		t.Errorf("value=%v previous=%v, want 0 and 0", m.Value(), m.PreviousValue())
	}
	if m.Label() != "" {
		t.Errorf("Label() = %q, want empty", m.Label())
	}
	for _, tt := range []struct {
		name string
		got  meter.Color
		want string
	}{
		{"background", m.Background(), "#ffffff"},
		{"foreground", m.Foreground(), "#000000"},
		{"unfilled", m.UnfilledColor(), "#cccccc"},
		{"small text", m.SmallTextColor(), "#cccccc"},
	} {
		if tt.got.Hex() != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, tt.got.Hex(), tt.want)
		}
	}
	if got := m.LargeFont().String(); got != "normal 30px Arial" {
		t.Errorf("LargeFont() = %q, want %q", got, "normal 30px Arial")
	}
	if got := m.SmallFont().String(); got != "normal 15px Arial" {
		t.Errorf("SmallFont() = %q, want %q", got, "normal 15px Arial")
	}
	if m.Animating() {
		t.Error("new meter should be idle")
	}
}

func TestSetValueKeepsPrevious(t *testing.T) {
	m, _ := newMeter(t, 100, 100, 100)

	m.SetValue(10)
	m.SetValue(70)
	if m.PreviousValue() != 10 || m.Value() != 70 {
		t.Errorf("previous=%v value=%v, want 10 and 70", m.PreviousValue(), m.Value())
	}

	m.SetValue(30)
	if m.PreviousValue() != 70 || m.Value() != 30 {
		t.Errorf("previous=%v value=%v, want 70 and 30", m.PreviousValue(), m.Value())
	}
}

func TestRatio(t *testing.T) {
	m, _ := newMeter(t, 100, 100, 200)
	for _, tt := range []struct {
		value, want float64
	}{
		{0, 0},
		{50, 0.25},
		{200, 1},
		{300, 1},
		{-10, 0},
		{math.NaN(), 0},
	} {
		m.SetValue(tt.value)
		if got := m.Ratio(); !near(got, tt.want) {
			t.Errorf("value %v: Ratio() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFontsFollowSetters(t *testing.T) {
	m, _ := newMeter(t, 200, 200, 100)

	m.SetFontFamily("Go Mono")
	if got, want := m.LargeFont().String(), "normal 30px Go Mono"; got != want {
		t.Errorf("LargeFont() = %q, want %q", got, want)
	}
	if got, want := m.SmallFont().String(), "normal 15px Go Mono"; got != want {
		t.Errorf("SmallFont() = %q, want %q", got, want)
	}

	m.SetFontWeight("bold")
	if got, want := m.LargeFont().String(), "bold 30px Go Mono"; got != want {
		t.Errorf("LargeFont() = %q, want %q", got, want)
	}
	if m.SmallFont().Size != m.LargeFont().Size/2 {
		t.Errorf("small font %v is not half of %v", m.SmallFont().Size, m.LargeFont().Size)
	}
}

func TestDrawFollowsResize(t *testing.T) {
	m, c := newMeter(t, 200, 200, 100)

	c.Resize(400, 300)
	if err := m.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	g := m.Geometry()
	if g.Width != 400 || g.Height != 300 {
		t.Errorf("geometry size = %vx%v, want 400x300", g.Width, g.Height)
	}
	if got := m.LargeFont().Size; got != 60 {
		t.Errorf("LargeFont().Size = %v after resize, want 60", got)
	}
	if got := m.SmallFont().Size; got != 30 {
		t.Errorf("SmallFont().Size = %v after resize, want 30", got)
	}
	bg := c.Rects()[0].Rect
	if bg.W != 400 || bg.H != 300 {
		t.Errorf("background rect %vx%v, want 400x300", bg.W, bg.H)
	}
}

func TestDrawHalfScale(t *testing.T) {
	m, c := newMeter(t, 300, 300, 100)
	m.SetValue(50)

	if err := m.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	rects := c.Rects()
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1 background", len(rects))
	}
	if r := rects[0]; r.Rect != (recording.Rect{X: 0, Y: 0, W: 300, H: 300}) || r.Style.Fill.Hex() != "#ffffff" {
		t.Errorf("background = %+v fill %s", r.Rect, r.Style.Fill)
	}

	strokes := c.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("Draw painted %d strokes, want track and fill", len(strokes))
	}
	track, fill := strokes[0], strokes[1]
	if !near(track.Path[0].Sweep(), meter.ArcLength) {
		t.Errorf("track sweep = %v, want %v", track.Path[0].Sweep(), meter.ArcLength)
	}
	if track.Style.Stroke.Hex() != "#cccccc" || fill.Style.Stroke.Hex() != "#000000" {
		t.Errorf("track %s fill %s, want #cccccc and #000000", track.Style.Stroke, fill.Style.Stroke)
	}
	if fill.Path[0].Sweep() != 0 {
		t.Errorf("first fill sweep = %v, want 0 (previous value)", fill.Path[0].Sweep())
	}
	for _, s := range strokes {
		if s.Style.LineCap != meter.LineCapRound {
			t.Errorf("stroke cap = %v, want round", s.Style.LineCap)
		}
		if !near(s.Style.LineWidth, 300.0/27) {
			t.Errorf("stroke width = %v, want %v", s.Style.LineWidth, 300.0/27)
		}
		a := s.Path[0]
		g := m.Geometry()
		if a.CX != g.CenterX || a.CY != g.ArcY || a.R != g.Radius || a.Start != meter.ArcStart || a.Counterclockwise {
			t.Errorf("arc = %+v, want center (%v,%v) r %v clockwise from ArcStart", a, g.CenterX, g.ArcY, g.Radius)
		}
	}

	c.Reset()
	frames := runToEnd(t, m)
	if frames != 41 {
		t.Errorf("transition took %d frames, want 41", frames)
	}

	sweeps := fillSweeps(t, c)
	for i := 1; i < len(sweeps); i++ {
		if sweeps[i] < sweeps[i-1] {
			t.Fatalf("fill shrinks at frame %d: %v < %v", i, sweeps[i], sweeps[i-1])
		}
	}
	if last := sweeps[len(sweeps)-1]; !near(last, meter.ArcLength*0.5) {
		t.Errorf("final fill sweep = %v, want %v", last, meter.ArcLength*0.5)
	}
	if n := len(c.Rects()) + len(c.Texts()); n != 0 {
		t.Errorf("animation frames repainted %d background/text items, want only arcs", n)
	}
}

func TestDrawDecrease(t *testing.T) {
	m, c := newMeter(t, 200, 200, 100)
	m.SetValue(80)
	m.SetValue(20)

	if err := m.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if step := m.Transition().StepSize(); step >= 0 {
		t.Errorf("StepSize() = %v, want negative", step)
	}

	runToEnd(t, m)
	sweeps := fillSweeps(t, c)
	if !near(sweeps[0], meter.ArcLength*0.8) {
		t.Errorf("first fill sweep = %v, want %v", sweeps[0], meter.ArcLength*0.8)
	}
	for i := 1; i < len(sweeps); i++ {
		if sweeps[i] > sweeps[i-1] {
			t.Fatalf("fill grows at frame %d", i)
		}
	}
	if last := sweeps[len(sweeps)-1]; !near(last, meter.ArcLength*0.2) {
		t.Errorf("final fill sweep = %v, want %v", last, meter.ArcLength*0.2)
	}
}

func TestDrawUnchangedValueRendersEndState(t *testing.T) {
	m, c := newMeter(t, 200, 200, 100)
	m.SetValue(30)
	m.SetValue(30)

	if err := m.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	tr := m.Transition()
	if tr.Ratio() != tr.EndRatio() {
		t.Fatalf("start ratio %v != end ratio %v", tr.Ratio(), tr.EndRatio())
	}

	c.Reset()
	if frames := runToEnd(t, m); frames != 1 {
		t.Errorf("zero-length transition took %d frames, want 1", frames)
	}
	sweeps := fillSweeps(t, c)
	if len(sweeps) != 1 || !near(sweeps[0], meter.ArcLength*0.3) {
		t.Errorf("fill sweeps = %v, want one at %v", sweeps, meter.ArcLength*0.3)
	}
}

func TestDrawSupersedesTransition(t *testing.T) {
	m, _ := newMeter(t, 200, 200, 100)
	m.SetValue(100)
	m.Draw()
	for range 5 {
		m.Step()
	}

	m.SetValue(20)
	m.Draw()

	tr := m.Transition()
	if !tr.Active() {
		t.Fatal("new transition not active")
	}
	if tr.Ratio() != 1 || tr.EndRatio() != 0.2 {
		t.Errorf("transition from %v to %v, want 1 to 0.2", tr.Ratio(), tr.EndRatio())
	}
	if frames := runToEnd(t, m); frames != 41 {
		t.Errorf("superseding transition took %d frames, want 41", frames)
	}
}

func TestOutOfRangeValuesAreClamped(t *testing.T) {
	m, c := newMeter(t, 200, 200, 100)

	m.SetValue(250)
	m.Draw()
	runToEnd(t, m)
	sweeps := fillSweeps(t, c)
	if last := sweeps[len(sweeps)-1]; !near(last, meter.ArcLength) {
		t.Errorf("fill sweep for 250/100 = %v, want full %v", last, meter.ArcLength)
	}

	c.Reset()
	m.SetValue(-40)
	m.Draw()
	runToEnd(t, m)
	for _, s := range fillSweeps(t, c) {
		if s < 0 || s > meter.ArcLength+eps {
			t.Fatalf("fill sweep %v outside [0, ArcLength]", s)
		}
	}
	sweeps = fillSweeps(t, c)
	if last := sweeps[len(sweeps)-1]; last != 0 {
		t.Errorf("fill sweep for -40 = %v, want 0", last)
	}
}

func TestTick(t *testing.T) {
	m, c := newMeter(t, 200, 200, 100)
	m.SetValue(100)
	m.Draw()
	c.Reset()

	if err := m.Tick(meter.FrameInterval / 2); err != nil {
		t.Fatal(err)
	}
	if n := len(c.Strokes()); n != 0 {
		t.Errorf("half a frame painted %d strokes, want 0", n)
	}

	m.Tick(meter.FrameInterval/2 + 9*meter.FrameInterval)
	if n := len(c.Strokes()); n != 20 {
		t.Errorf("ten frames painted %d strokes, want 20", n)
	}

	m.Tick(time.Second)
	if m.Animating() {
		t.Error("still animating after a full second")
	}
	if n := len(c.Strokes()); n != 41*2 {
		t.Errorf("whole transition painted %d strokes, want %d", n, 41*2)
	}

	c.Reset()
	m.Tick(time.Second)
	if n := len(c.Commands()); n != 0 {
		t.Errorf("Tick on idle meter recorded %d commands", n)
	}
}

func TestTransitionDuration(t *testing.T) {
	for _, to := range []float64{100, 1} {
		m, _ := newMeter(t, 200, 200, 100)
		m.SetValue(to)
		m.Draw()

		var elapsed time.Duration
		for m.Animating() {
			m.Tick(meter.FrameInterval)
			elapsed += meter.FrameInterval
		}
		if elapsed != 41*meter.FrameInterval {
			t.Errorf("0 -> %v took %v, want %v", to, elapsed, 41*meter.FrameInterval)
		}
	}
}

func TestFinishAndCancel(t *testing.T) {
	m, c := newMeter(t, 200, 200, 100)
	m.SetValue(60)
	m.Draw()
	c.Reset()

	if err := m.Finish(); err != nil {
		t.Fatal(err)
	}
	if m.Animating() {
		t.Error("Finish left the transition active")
	}
	sweeps := fillSweeps(t, c)
	if len(sweeps) != 1 || !near(sweeps[0], meter.ArcLength*0.6) {
		t.Errorf("Finish painted %v, want one frame at %v", sweeps, meter.ArcLength*0.6)
	}

	m.SetValue(10)
	m.Draw()
	c.Reset()
	m.Cancel()
	if m.Animating() {
		t.Error("Cancel left the transition active")
	}
	m.Step()
	if n := len(c.Commands()); n != 0 {
		t.Errorf("Step after Cancel recorded %d commands", n)
	}
}

func TestDrawEmptyCanvas(t *testing.T) {
	m, c := newMeter(t, 0, 0, 100)
	m.SetValue(50)

	if err := m.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := len(c.Commands()); n != 0 {
		t.Errorf("empty canvas recorded %d commands", n)
	}
	if m.Animating() {
		t.Error("empty canvas started a transition")
	}
}

func TestDrawReportsSurfaceErrors(t *testing.T) {
	errBoom := errors.New("boom")
	m, c := newMeter(t, 200, 200, 100)
	c.FailWith(errBoom)
	m.SetValue(40)

	if err := m.Draw(); !errors.Is(err, errBoom) {
		t.Fatalf("Draw() error = %v, want %v", err, errBoom)
	}
	if !m.Animating() {
		t.Error("failed frame should still start the transition")
	}
	if err := m.Step(); !errors.Is(err, errBoom) {
		t.Errorf("Step() error = %v, want %v", err, errBoom)
	}

	c.FailWith(nil)
	if err := m.Step(); err != nil {
		t.Errorf("Step() error = %v after recovery", err)
	}
}

func TestTextLayout(t *testing.T) {
	m, c := newMeter(t, 300, 300, 100, meter.WithLabel("%"))
	m.SetValue(50)
	m.Draw()

	texts := c.Texts()
	if len(texts) != 2 {
		t.Fatalf("got %d text runs, want 2", len(texts))
	}
	value, label := texts[0], texts[1]

	// FixedMetrics: 0.6 em advance, 0.7 em ascent, 0.05 em descent.
	const large, small = 45.0, 22.5
	fontHeight := 0.75 * large
	spacer := fontHeight / 10
	valueWidth := 0.6 * large * 2
	labelWidth := 0.6 * small
	textX := 150 - (valueWidth+spacer+labelWidth)/2
	baseline := m.Geometry().TextY() - fontHeight/2 + 0.7*large

	if value.Text != "50" || !near(value.X, textX) || !near(value.Y, baseline) {
		t.Errorf("value %q at (%v,%v), want \"50\" at (%v,%v)", value.Text, value.X, value.Y, textX, baseline)
	}
	if label.Text != "%" || !near(label.X, textX+valueWidth+spacer) || !near(label.Y, baseline) {
		t.Errorf("label %q at (%v,%v), want \"%%\" at (%v,%v)", label.Text, label.X, label.Y, textX+valueWidth+spacer, baseline)
	}
	if value.Style.Font != m.LargeFont() || value.Style.Fill.Hex() != "#000000" {
		t.Errorf("value style = %q %s", value.Style.Font, value.Style.Fill)
	}
	if label.Style.Font != m.SmallFont() || label.Style.Fill.Hex() != "#cccccc" {
		t.Errorf("label style = %q %s", label.Style.Font, label.Style.Fill)
	}
}

func TestTextBaselineIgnoresDigits(t *testing.T) {
	metrics := func(f meter.Font, text string) meter.TextMetrics {
		m := recording.FixedMetrics(f, text)
		if text == "7" {
			m.Ascent, m.Descent = 0.1*f.Size, 0.9*f.Size
		}
		return m
	}
	c := recording.NewCanvas(200, 200, recording.WithMetrics(metrics))
	m, _ := meter.New(c, 10)

	m.SetValue(7)
	m.Draw()
	y7 := c.Texts()[0].Y

	c.Reset()
	m.SetValue(3)
	m.Draw()
	y3 := c.Texts()[0].Y

	if y7 != y3 {
		t.Errorf("baseline moved with the digits: %v vs %v", y7, y3)
	}
}

func TestValueFormatting(t *testing.T) {
	tests := []struct {
		name  string
		opts  []meter.Option
		value float64
		want  string
	}{
		{"shortest", nil, 12.5, "12.5"},
		{"integer", nil, 50, "50"},
		{"precision", []meter.Option{meter.WithPrecision(1)}, 50, "50.0"},
		{"locale", []meter.Option{meter.WithLocale(language.English), meter.WithPrecision(1)}, 1234.5, "1,234.5"},
		{"custom", []meter.Option{meter.WithFormatter(func(v float64) string { return "~" })}, 5, "~"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, c := newMeter(t, 200, 200, 10000, tt.opts...)
			m.SetValue(tt.value)
			m.Draw()
			if got := c.Texts()[0].Text; got != tt.want {
				t.Errorf("readout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyTheme(t *testing.T) {
	m, _ := newMeter(t, 200, 200, 100)

	if err := m.ApplyTheme(meter.DarkTheme); err != nil {
		t.Fatalf("ApplyTheme() error = %v", err)
	}
	if got := m.Background().Hex(); got != "#1e1e1e" {
		t.Errorf("Background() = %s, want #1e1e1e", got)
	}
	if got := m.LargeFont().Weight; got != "bold" {
		t.Errorf("LargeFont().Weight = %q, want bold", got)
	}

	err := m.ApplyTheme(meter.Theme{Foreground: "red", Unfilled: "not-a-color"})
	if !errors.Is(err, meter.ErrInvalidColor) {
		t.Fatalf("ApplyTheme() error = %v, want ErrInvalidColor", err)
	}
	if got := m.Foreground().Hex(); got != "#4fc3f7" {
		t.Errorf("invalid theme changed Foreground to %s", got)
	}
}

func TestWithTheme(t *testing.T) {
	c := recording.NewCanvas(100, 100)
	if _, err := meter.New(c, 100, meter.WithTheme(meter.Theme{Background: "#12"})); !errors.Is(err, meter.ErrInvalidColor) {
		t.Errorf("New() error = %v, want ErrInvalidColor", err)
	}

	m, err := meter.New(c, 100, meter.WithTheme(meter.Theme{FontFamily: "Go"}))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.LargeFont().Family; got != "Go" {
		t.Errorf("LargeFont().Family = %q, want Go", got)
	}
}

func TestHexSetters(t *testing.T) {
	m, _ := newMeter(t, 100, 100, 100)

	setters := []struct {
		name string
		set  func(string) error
		get  func() meter.Color
	}{
		{"background", m.SetBackgroundHex, m.Background},
		{"foreground", m.SetForegroundHex, m.Foreground},
		{"unfilled", m.SetUnfilledColorHex, m.UnfilledColor},
		{"small text", m.SetSmallTextColorHex, m.SmallTextColor},
	}
	for _, s := range setters {
		if err := s.set("#336699"); err != nil {
			t.Errorf("%s: %v", s.name, err)
		}
		if got := s.get().Hex(); got != "#336699" {
			t.Errorf("%s = %s, want #336699", s.name, got)
		}
		if err := s.set("bogus"); !errors.Is(err, meter.ErrInvalidColor) {
			t.Errorf("%s: error = %v, want ErrInvalidColor", s.name, err)
		}
		if got := s.get().Hex(); got != "#336699" {
			t.Errorf("%s changed to %s by an invalid color", s.name, got)
		}
	}

	m.SetForeground(meter.RGB(1, 0, 0))
	if got := m.Foreground().Hex(); got != "#ff0000" {
		t.Errorf("SetForeground: %s", got)
	}
}
