package matprop

// ColorLerp moves one color property towards a target over a fixed amount of
// frame time. It is driven one step at a time through Advance, normally by a
// Scheduler.
//
// Two lerps on the same renderer, key and slot are not coordinated: each step
// both read and write the same overrides and whichever advances last in a
// frame wins.
type ColorLerp struct {
	renderer Renderer
	block    *PropertyBlock
	key      PropertyKey
	slot     int

	start    Color
	end      Color
	duration float32
	elapsed  float32
	done     bool
}

// LerpColor captures the current value of key on slot and returns a task that
// interpolates it to end over duration seconds. Nothing is written until the
// first Advance.
func LerpColor(end Color, duration float32, renderer Renderer, block *PropertyBlock, key PropertyKey, slot int) *ColorLerp {
	start := GetColorProperty(renderer, block, key, slot)
	return &ColorLerp{
		renderer: renderer,
		block:    block,
		key:      key,
		slot:     slot,
		start:    start,
		end:      end,
		duration: duration,
	}
}

// Advance runs one step. While time remains it writes the interpolated color
// and then adds dt to the elapsed time; once elapsed reaches the duration it
// writes end exactly and reports done. A non-positive duration finishes on the
// first call.
func (l *ColorLerp) Advance(dt float32) bool {
	if l.done {
		return true
	}
	if l.elapsed < l.duration {
		l.write(l.start.Lerp(l.end, l.elapsed/l.duration))
		l.elapsed += dt
		return false
	}
	l.write(l.end)
	l.done = true
	return true
}

func (l *ColorLerp) write(c Color) {
	SetColorProperty(c, l.renderer, l.block, l.key, l.slot)
}

func (l *ColorLerp) Start() Color      { return l.start }
func (l *ColorLerp) End() Color        { return l.end }
func (l *ColorLerp) Elapsed() float32  { return l.elapsed }
func (l *ColorLerp) Duration() float32 { return l.duration }
func (l *ColorLerp) Done() bool        { return l.done }
