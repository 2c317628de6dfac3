package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/drawlib"
)

// Recorder captures drawing operations as an ordered list of commands.
// Each Add method stores a deep copy of its arguments, so callers may
// reuse their slices afterwards. Recording never touches the filesystem
// and never renders.
//
// A Recorder may have a Renderer attached. Draw replays the log against
// it, and the bounding queries are answered by it. Without one the
// Recorder works in record-only mode: the log can still be replayed with
// Playback, but queries fail with drawlib.ErrUnsupported.
//
// Example:
//
//	rec := recording.NewRecorder(recording.WithRenderer(backend))
//	rec.AddDrawPolygons(polys, drawlib.NewShapeProperties(0, 0, 1))
//	rec.AddDrawText(labels, drawlib.DefaultTextProperties())
//	if err := rec.Draw(); err != nil {
//	    // handle error
//	}
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands        []Command
	renderer        Renderer
	continueOnError bool
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithRenderer attaches a renderer.
func WithRenderer(r Renderer) Option {
	return func(rec *Recorder) { rec.renderer = r }
}

// WithContinueOnError makes replay run every command even when some fail.
// The failures are joined into the returned error. By default replay stops
// at the first failing command.
func WithContinueOnError() Option {
	return func(rec *Recorder) { rec.continueOnError = true }
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{commands: make([]Command, 0, 64)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach sets the renderer used by Draw and the bounding queries.
func (r *Recorder) Attach(rd Renderer) { r.renderer = rd }

// Detach removes the attached renderer, switching to record-only mode.
func (r *Recorder) Detach() { r.renderer = nil }

// Renderer returns the attached renderer, or nil.
func (r *Recorder) Renderer() Renderer { return r.renderer }

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// AddDrawPolygons records a polygon fill.
func (r *Recorder) AddDrawPolygons(polygons []drawlib.Polygon, props drawlib.ShapeProperties) {
	r.add(DrawPolygonsCommand{Polygons: polygons, Properties: props})
}

// AddDrawLines records a polyline stroke.
func (r *Recorder) AddDrawLines(lines []drawlib.Contour, props drawlib.LineProperties) {
	r.add(DrawLinesCommand{Lines: lines, Properties: props})
}

// AddDrawText records straight text labels.
func (r *Recorder) AddDrawText(labels []drawlib.TextLabel, props drawlib.TextProperties) {
	r.add(DrawTextCommand{Labels: labels, Properties: props})
}

// AddDrawTwistedText records text along paths.
func (r *Recorder) AddDrawTwistedText(labels []drawlib.TwistedTextLabel, props drawlib.TextProperties) {
	r.add(DrawTwistedTextCommand{Labels: labels, Properties: props})
}

// AddLoadImageResources records loading image files under resource ids.
// Nothing is read until the command is replayed.
func (r *Recorder) AddLoadImageResources(resources map[string]string) {
	r.add(LoadImageResourcesCommand{Resources: resources})
}

// AddUnloadImageResources records releasing image resources.
func (r *Recorder) AddUnloadImageResources(ids []string) {
	r.add(UnloadImageResourcesCommand{IDs: ids})
}

func (r *Recorder) add(cmd Command) {
	r.commands = append(r.commands, cmd.clone())
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Commands returns deep copies of the recorded commands in order.
func (r *Recorder) Commands() []Command {
	return cloneCommands(r.commands)
}

func cloneCommands(cmds []Command) []Command {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		out[i] = c.clone()
	}
	return out
}

// Clear discards all recorded commands. Clearing an empty Recorder is a
// no-op.
func (r *Recorder) Clear() {
	clear(r.commands)
	r.commands = r.commands[:0]
}

// Finish returns an immutable snapshot of the recorded commands. The
// Recorder can continue to be used and cleared independently.
func (r *Recorder) Finish() *Recording {
	return &Recording{commands: cloneCommands(r.commands), continueOnError: r.continueOnError}
}

// --------------------------------------------------------------------------
// Replay
// --------------------------------------------------------------------------

// ErrNoRenderer is returned by Draw when no renderer is attached.
var ErrNoRenderer = fmt.Errorf("recording: no renderer attached: %w", drawlib.ErrUnsupported)

// Draw replays the log against the attached renderer.
func (r *Recorder) Draw() error {
	if r.renderer == nil {
		return ErrNoRenderer
	}
	return r.Playback(r.renderer)
}

// Playback replays the log against rd in order.
func (r *Recorder) Playback(rd Renderer) error {
	return playback(r.commands, rd, r.continueOnError)
}

// Drain replays the log against rd and then clears it, whether or not
// replay succeeded.
func (r *Recorder) Drain(rd Renderer) error {
	defer r.Clear()
	return r.Playback(rd)
}

// Recording is an immutable list of commands that can be replayed to any
// Renderer.
type Recording struct {
	commands        []Command
	continueOnError bool
}

// Len returns the number of commands.
func (r *Recording) Len() int { return len(r.commands) }

// Commands returns deep copies of the commands of the recording.
func (r *Recording) Commands() []Command { return cloneCommands(r.commands) }

// Playback replays the recording to the given renderer.
func (r *Recording) Playback(rd Renderer) error {
	return playback(r.commands, rd, r.continueOnError)
}

// PlaybackError reports the command that failed during replay.
type PlaybackError struct {
	Index int
	Type  CommandType
	Err   error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("recording: command %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

func playback(cmds []Command, rd Renderer, continueOnError bool) error {
	log := drawlib.Logger()
	var errs []error
	for i, cmd := range cmds {
		log.Debug("recording: replay", "index", i, "cmd", cmd.Type())
		err := dispatch(rd, cmd)
		if err == nil {
			continue
		}
		perr := &PlaybackError{Index: i, Type: cmd.Type(), Err: err}
		if !continueOnError {
			return perr
		}
		log.Warn("recording: command failed", "index", i, "cmd", cmd.Type(), "err", err)
		errs = append(errs, perr)
	}
	return errors.Join(errs...)
}

func dispatch(rd Renderer, cmd Command) error {
	switch c := cmd.(type) {
	case DrawPolygonsCommand:
		return rd.DrawPolygons(c.Polygons, c.Properties)
	case DrawLinesCommand:
		return rd.DrawLines(c.Lines, c.Properties)
	case DrawTextCommand:
		return rd.DrawText(c.Labels, c.Properties)
	case DrawTwistedTextCommand:
		ptr, ok := rd.(PathTextRenderer)
		if !ok {
			return fmt.Errorf("%w: text along a path", drawlib.ErrUnimplemented)
		}
		return ptr.DrawTwistedText(c.Labels, c.Properties)
	case LoadImageResourcesCommand:
		return rd.LoadImageResources(c.Resources)
	case UnloadImageResourcesCommand:
		return rd.UnloadImageResources(c.IDs)
	default:
		return fmt.Errorf("recording: unknown command %T", cmd)
	}
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// TriangleBoundsText returns two triangles covering the rotated text box of
// label. On failure the triangle list is nil.
func (r *Recorder) TriangleBoundsText(label drawlib.TextLabel, props drawlib.TextProperties) ([]drawlib.Triangle, error) {
	tb, ok := r.renderer.(TextBounder)
	if !ok {
		return nil, r.unsupported("text bounds")
	}
	tris, err := tb.TriangleBoundsText(label, props)
	if err != nil {
		return nil, err
	}
	return tris, nil
}

// TriangleBoundsTwistedText returns two triangles per glyph of label laid
// out along its path, together with the path length and the text length.
// On failure the triangle list is nil and both lengths are -1.
func (r *Recorder) TriangleBoundsTwistedText(label drawlib.TwistedTextLabel, props drawlib.TextProperties) (
	tris []drawlib.Triangle, pathLen, textLen float64, err error) {
	pb, ok := r.renderer.(PathTextBounder)
	if !ok {
		return nil, -1, -1, r.unsupported("text along a path bounds")
	}
	tris, pathLen, textLen, err = pb.TriangleBoundsTwistedText(label, props)
	if err != nil {
		return nil, -1, -1, err
	}
	return tris, pathLen, textLen, nil
}

// ResourceDimensions returns the pixel size of the image file at path.
// On failure both dimensions are 0.
func (r *Recorder) ResourceDimensions(path string) (width, height int, err error) {
	dq, ok := r.renderer.(DimensionsQuerier)
	if !ok {
		return 0, 0, r.unsupported("resource dimensions")
	}
	width, height, err = dq.ResourceDimensions(path)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func (r *Recorder) unsupported(what string) error {
	if r.renderer == nil {
		return fmt.Errorf("recording: %s: no renderer attached: %w", what, drawlib.ErrUnsupported)
	}
	return fmt.Errorf("recording: %s: %T: %w", what, r.renderer, drawlib.ErrUnsupported)
}
