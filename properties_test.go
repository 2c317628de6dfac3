package drawlib

import (
	"slices"
	"testing"
)

func TestShapePropertiesLess(t *testing.T) {
	base := DefaultShapeProperties()
	tests := []struct {
		name   string
		mutate func(*ShapeProperties)
	}{
		{"R", func(p *ShapeProperties) { p.R = 2 }},
		{"G", func(p *ShapeProperties) { p.G = 2 }},
		{"B", func(p *ShapeProperties) { p.B = 2 }},
		{"A", func(p *ShapeProperties) { p.A = 2 }},
		{"ImageID", func(p *ShapeProperties) { p.ImageID = "tile" }},
		{"TexX", func(p *ShapeProperties) { p.TexX = 1 }},
		{"TexY", func(p *ShapeProperties) { p.TexY = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)
			if !base.Less(other) {
				t.Errorf("base.Less(other) = false, want true")
			}
			if other.Less(base) {
				t.Errorf("other.Less(base) = true, want false")
			}
		})
	}
	if base.Less(base) {
		t.Error("Less must be irreflexive")
	}
}

func TestShapePropertiesFieldPrecedence(t *testing.T) {
	a := ShapeProperties{R: 0, G: 9}
	b := ShapeProperties{R: 1, G: 0}
	if !a.Less(b) {
		t.Error("R must take precedence over G")
	}
}

func TestLinePropertiesLess(t *testing.T) {
	base := DefaultLineProperties()
	tests := []struct {
		name   string
		mutate func(*LineProperties)
	}{
		{"R", func(p *LineProperties) { p.R = 2 }},
		{"A", func(p *LineProperties) { p.A = 2 }},
		{"Width", func(p *LineProperties) { p.Width = 3 }},
		{"ClosedLoop", func(p *LineProperties) { p.ClosedLoop = true }},
		{"Join", func(p *LineProperties) { p.Join = "round" }},
		{"Cap", func(p *LineProperties) { p.Cap = "square" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)
			if !base.Less(other) || other.Less(base) {
				t.Errorf("ordering of %s not strict", tt.name)
			}
		})
	}
}

func TestTextPropertiesLess(t *testing.T) {
	base := DefaultTextProperties()
	tests := []struct {
		name   string
		mutate func(*TextProperties)
	}{
		{"FR", func(p *TextProperties) { p.FR = 2 }},
		{"LA", func(p *TextProperties) { p.LA = 2 }},
		{"Font", func(p *TextProperties) { p.Font = "Serif" }},
		{"FontSize", func(p *TextProperties) { p.FontSize = 12 }},
		{"Outline", func(p *TextProperties) { p.Outline = true }},
		{"LineWidth", func(p *TextProperties) { p.LineWidth = 2 }},
		{"VAlign", func(p *TextProperties) { p.VAlign = 0.5 }},
		{"HAlign", func(p *TextProperties) { p.HAlign = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.mutate(&other)
			if !base.Less(other) || other.Less(base) {
				t.Errorf("ordering of %s not strict", tt.name)
			}
		})
	}

	// VAlign is compared before HAlign.
	a, b := base, base
	a.HAlign = 1
	b.VAlign = 1
	if !a.Less(b) {
		t.Error("VAlign must take precedence over HAlign")
	}
}

func TestPropertiesSortable(t *testing.T) {
	props := []LineProperties{
		NewLineProperties(0, 0, 1, 1),
		NewLineProperties(1, 0, 0, 1),
		NewLineProperties(0, 1, 0, 1),
	}
	slices.SortFunc(props, LineProperties.Compare)
	if props[0].B != 1 || props[1].G != 1 || props[2].R != 1 {
		t.Errorf("sorted order = %+v", props)
	}
}

func TestDefaults(t *testing.T) {
	lp := DefaultLineProperties()
	if lp.Join != JoinMiter || lp.Cap != CapButt || lp.Width != 1 || lp.ClosedLoop {
		t.Errorf("DefaultLineProperties() = %+v", lp)
	}
	tp := NewTextProperties(0.5, 0, 0)
	if tp.Font != "Sans" || tp.FontSize != 10 || !tp.Fill || tp.Outline {
		t.Errorf("NewTextProperties() = %+v", tp)
	}
	if tp.FR != 0.5 || tp.LR != 0.5 {
		t.Errorf("NewTextProperties color not applied to fill and outline: %+v", tp)
	}
	sp := NewShapeProperties(0, 0, 1)
	if sp.A != 1 || sp.ImageID != "" {
		t.Errorf("NewShapeProperties() = %+v", sp)
	}
}
