package recording

import (
	"maps"
	"slices"

	"github.com/gogpu/drawlib"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawPolygons          CommandType = iota // Fill polygons with holes
	CmdDrawLines                                // Stroke polylines
	CmdDrawText                                 // Draw straight text labels
	CmdDrawTwistedText                          // Draw text along paths
	CmdLoadImageResources                       // Register image resources
	CmdUnloadImageResources                     // Release image resources
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawPolygons:         "DrawPolygons",
	CmdDrawLines:            "DrawLines",
	CmdDrawText:             "DrawText",
	CmdDrawTwistedText:      "DrawTwistedText",
	CmdLoadImageResources:   "LoadImageResources",
	CmdUnloadImageResources: "UnloadImageResources",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types. The set of
// commands is closed: only the types in this package implement it.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// clone returns a deep copy of the command.
	clone() Command
}

// DrawPolygonsCommand fills polygons with holes.
type DrawPolygonsCommand struct {
	Polygons   []drawlib.Polygon
	Properties drawlib.ShapeProperties
}

// Type implements Command.
func (DrawPolygonsCommand) Type() CommandType { return CmdDrawPolygons }

func (c DrawPolygonsCommand) clone() Command {
	return DrawPolygonsCommand{Polygons: drawlib.ClonePolygons(c.Polygons), Properties: c.Properties}
}

// DrawLinesCommand strokes polylines.
type DrawLinesCommand struct {
	Lines      []drawlib.Contour
	Properties drawlib.LineProperties
}

// Type implements Command.
func (DrawLinesCommand) Type() CommandType { return CmdDrawLines }

func (c DrawLinesCommand) clone() Command {
	return DrawLinesCommand{Lines: drawlib.CloneContours(c.Lines), Properties: c.Properties}
}

// DrawTextCommand draws straight text labels.
type DrawTextCommand struct {
	Labels     []drawlib.TextLabel
	Properties drawlib.TextProperties
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) clone() Command {
	return DrawTextCommand{Labels: drawlib.CloneTextLabels(c.Labels), Properties: c.Properties}
}

// DrawTwistedTextCommand draws text bent along paths.
type DrawTwistedTextCommand struct {
	Labels     []drawlib.TwistedTextLabel
	Properties drawlib.TextProperties
}

// Type implements Command.
func (DrawTwistedTextCommand) Type() CommandType { return CmdDrawTwistedText }

func (c DrawTwistedTextCommand) clone() Command {
	return DrawTwistedTextCommand{Labels: drawlib.CloneTwistedLabels(c.Labels), Properties: c.Properties}
}

// LoadImageResourcesCommand registers image files under resource ids.
type LoadImageResourcesCommand struct {
	// Resources maps resource ids to file paths.
	Resources map[string]string
}

// Type implements Command.
func (LoadImageResourcesCommand) Type() CommandType { return CmdLoadImageResources }

func (c LoadImageResourcesCommand) clone() Command {
	return LoadImageResourcesCommand{Resources: maps.Clone(c.Resources)}
}

// UnloadImageResourcesCommand releases image resources by id.
type UnloadImageResourcesCommand struct {
	IDs []string
}

// Type implements Command.
func (UnloadImageResourcesCommand) Type() CommandType { return CmdUnloadImageResources }

func (c UnloadImageResourcesCommand) clone() Command {
	return UnloadImageResourcesCommand{IDs: slices.Clone(c.IDs)}
}
