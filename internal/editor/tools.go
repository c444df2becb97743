package editor

// Tool is the active canvas tool.
type Tool int

const (
	ToolNone Tool = iota
	ToolDrag
	ToolLeftCone
	ToolRightCone
	ToolCar
)

func (t Tool) String() string {
	switch t {
	case ToolNone:
		return "none"
	case ToolDrag:
		return "drag"
	case ToolLeftCone:
		return "left cone"
	case ToolRightCone:
		return "right cone"
	case ToolCar:
		return "car"
	default:
		return "unknown"
	}
}

// Places reports whether the tool creates objects on press.
func (t Tool) Places() bool {
	return t == ToolLeftCone || t == ToolRightCone || t == ToolCar
}

// Panel is the tool panel shown next to the canvas. At most one is open.
type Panel int

const (
	NoPanel Panel = iota
	DragPanel
	GeneratePanel
)

func (p Panel) String() string {
	switch p {
	case NoPanel:
		return "none"
	case DragPanel:
		return "drag & drop"
	case GeneratePanel:
		return "generate"
	default:
		return "unknown"
	}
}

// PanelEvent is a user action on the panel buttons.
type PanelEvent int

const (
	ToggleDrag PanelEvent = iota
	ToggleGenerate
	OpenDrag
	CloseAll
)

// Transition returns the panel shown after ev. Opening one panel closes the other.
func Transition(p Panel, ev PanelEvent) Panel {
	switch ev {
	case ToggleDrag:
		if p == DragPanel {
			return NoPanel
		}
		return DragPanel
	case ToggleGenerate:
		if p == GeneratePanel {
			return NoPanel
		}
		return GeneratePanel
	case OpenDrag:
		return DragPanel
	case CloseAll:
		return NoPanel
	default:
		return p
	}
}
