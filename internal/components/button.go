package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant is the closed set of button colour tokens.
type ButtonVariant int

const (
	ButtonGray ButtonVariant = iota
	ButtonRed
	ButtonGreen
	ButtonDisabled
)

// String names the variant.
func (v ButtonVariant) String() string {
	switch v {
	case ButtonRed:
		return "red"
	case ButtonGreen:
		return "green"
	case ButtonDisabled:
		return "disabled"
	default:
		return "gray"
	}
}

const buttonWidth = 12

// Button is a stateless clickable control. A disabled variant never invokes
// OnClick, whether or not one is attached.
type Button struct {
	Label   string
	Variant ButtonVariant
	OnClick func()
}

// NewButton creates a button with the given label, variant and handler.
func NewButton(label string, variant ButtonVariant, onClick func()) Button {
	return Button{Label: label, Variant: variant, OnClick: onClick}
}

// Enabled reports whether pressing the button does anything.
func (b Button) Enabled() bool {
	return b.Variant != ButtonDisabled && b.OnClick != nil
}

// Press activates the button. It returns whether the handler ran.
func (b Button) Press() bool {
	if !b.Enabled() {
		return false
	}
	b.OnClick()
	return true
}

// View renders the button in the given theme.
func (b Button) View(theme Theme) string {
	return b.render(theme, buttonWidth)
}

func (b Button) render(theme Theme, width int) string {
	return b.style(theme, width).Render(b.Label)
}

// minWidth is the narrowest the button can be drawn without clipping its label.
func (b Button) minWidth() int {
	return lipgloss.Width(b.Label) + 2
}

func (b Button) style(theme Theme, width int) lipgloss.Style {
	colours := theme.Variant(b.Variant)
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 0).
		Background(colours.Base).
		Foreground(colours.OnBase)

	if b.Variant == ButtonDisabled {
		style = style.Faint(true)
	} else {
		style = style.Bold(true)
	}
	return style
}

// Span is a horizontal column range [Start, End) occupied by a rendered button.
type Span struct {
	Start int
	End   int
}

// Contains reports whether column x falls in the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// ButtonGroup lays buttons out horizontally with a fixed gap.
type ButtonGroup struct {
	buttons  []Button
	spacing  int
	maxWidth int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 4}
}

// WithMaxWidth bounds the row width. The gap shrinks first, then the buttons,
// down to one column of gap and the label plus one column each side.
// Zero means unbounded.
func (bg *ButtonGroup) WithMaxWidth(width int) *ButtonGroup {
	if width >= 0 {
		bg.maxWidth = width
	}
	return bg
}

// MinWidth is the narrowest row the group can lay out in one line.
func (bg *ButtonGroup) MinWidth() int {
	if len(bg.buttons) == 0 {
		return 0
	}
	width := len(bg.buttons) - 1
	for _, button := range bg.buttons {
		width += button.minWidth()
	}
	return width
}

// fit returns the button width and gap to use, or ok=false when the row
// cannot fit in maxWidth.
func (bg *ButtonGroup) fit() (width, spacing int, ok bool) {
	n := len(bg.buttons)
	width, spacing = buttonWidth, bg.spacing
	if bg.maxWidth == 0 || n*width+(n-1)*spacing <= bg.maxWidth {
		return width, spacing, true
	}

	if n > 1 {
		spacing = (bg.maxWidth - n*width) / (n - 1)
		if spacing >= 1 {
			return width, spacing, true
		}
		spacing = 1
	} else {
		spacing = 0
	}

	width = (bg.maxWidth - (n-1)*spacing) / n
	if width < bg.widestLabel() {
		return 0, 0, false
	}
	return width, spacing, true
}

func (bg *ButtonGroup) widestLabel() int {
	widest := 0
	for _, button := range bg.buttons {
		if w := button.minWidth(); w > widest {
			widest = w
		}
	}
	return widest
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	if spacing >= 0 {
		bg.spacing = spacing
	}
	return bg
}

// View renders the group and the column span of each button, relative to the
// group's left edge. When the row cannot fit in the maximum width it is drawn
// clipped and no spans are returned, so nothing in it is clickable.
func (bg *ButtonGroup) View(theme Theme) (string, []Span) {
	if len(bg.buttons) == 0 {
		return "", nil
	}

	width, spacing, ok := bg.fit()
	if !ok {
		row := bg.row(theme, bg.widestLabel(), 1, nil)
		return lipgloss.NewStyle().MaxWidth(bg.maxWidth).Render(row), nil
	}

	spans := make([]Span, 0, len(bg.buttons))
	return bg.row(theme, width, spacing, &spans), spans
}

func (bg *ButtonGroup) row(theme Theme, width, spacing int, spans *[]Span) string {
	gap := theme.Text().Render(strings.Repeat(" ", spacing))
	parts := make([]string, 0, len(bg.buttons)*2)
	x := 0
	for i, button := range bg.buttons {
		if i > 0 {
			parts = append(parts, gap)
			x += spacing
		}
		rendered := button.render(theme, width)
		w := lipgloss.Width(rendered)
		if spans != nil {
			*spans = append(*spans, Span{Start: x, End: x + w})
		}
		parts = append(parts, rendered)
		x += w
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
