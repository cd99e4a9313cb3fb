package calc

type action uint8

const (
	actAppend action = iota
	actClear
	actEvaluate
	actClose
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type button struct {
	label string
	act   action
	style buttonStyle
	rect  rect
}

type buttonSpec struct {
	label    string
	row, col int
	span     int
	act      action
	style    buttonStyle
}

const (
	gridRows = 5
	gridCols = 4
	gridPad  = 1
)

var buttonSpecs = []buttonSpec{
	{label: "C", row: 0, col: 0, span: 2, act: actClear, style: styleOperator},
	{label: "X", row: 0, col: 2, span: 2, act: actClose, style: styleClose},

	{label: "7", row: 1, col: 0, span: 1, style: styleDigit},
	{label: "8", row: 1, col: 1, span: 1, style: styleDigit},
	{label: "9", row: 1, col: 2, span: 1, style: styleDigit},
	{label: "/", row: 1, col: 3, span: 1, style: styleDigit},

	{label: "4", row: 2, col: 0, span: 1, style: styleDigit},
	{label: "5", row: 2, col: 1, span: 1, style: styleDigit},
	{label: "6", row: 2, col: 2, span: 1, style: styleDigit},
	{label: "*", row: 2, col: 3, span: 1, style: styleDigit},

	{label: "1", row: 3, col: 0, span: 1, style: styleDigit},
	{label: "2", row: 3, col: 1, span: 1, style: styleDigit},
	{label: "3", row: 3, col: 2, span: 1, style: styleDigit},
	{label: "-", row: 3, col: 3, span: 1, style: styleDigit},

	{label: "=", row: 4, col: 0, span: 1, act: actEvaluate, style: styleEquals},
	{label: "0", row: 4, col: 1, span: 1, style: styleDigit},
	{label: ".", row: 4, col: 2, span: 1, style: styleDigit},
	{label: "+", row: 4, col: 3, span: 1, style: styleDigit},
}

// layout splits the window into a display frame (top half) holding the
// result and entry labels, and a button grid (bottom half).
type layout struct {
	result  rect
	entry   rect
	buttons []button
}

func newLayout(w, h int) layout {
	top := h / 2
	l := layout{
		result: rect{x: 0, y: 0, w: w, h: top / 2},
		entry:  rect{x: 0, y: top / 2, w: w, h: top - top/2},
	}

	gridH := h - top
	for _, s := range buttonSpecs {
		x0 := s.col * w / gridCols
		x1 := (s.col + s.span) * w / gridCols
		y0 := top + s.row*gridH/gridRows
		y1 := top + (s.row+1)*gridH/gridRows
		l.buttons = append(l.buttons, button{
			label: s.label,
			act:   s.act,
			style: s.style,
			rect: rect{
				x: x0 + gridPad,
				y: y0 + gridPad,
				w: x1 - x0 - 2*gridPad,
				h: y1 - y0 - 2*gridPad,
			},
		})
	}
	return l
}

// hit returns the index of the button under x,y, or -1.
func (l *layout) hit(x, y int) int {
	for i := range l.buttons {
		if l.buttons[i].rect.contains(x, y) {
			return i
		}
	}
	return -1
}

func (l *layout) find(label string) int {
	for i := range l.buttons {
		if l.buttons[i].label == label {
			return i
		}
	}
	return -1
}
