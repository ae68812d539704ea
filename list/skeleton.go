package list

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/rowkit/styles"
)

// SkeletonTickMsg advances the loading placeholder animation.
type SkeletonTickMsg time.Time

// skeletonTickInterval is the placeholder animation frame rate.
const skeletonTickInterval = 80 * time.Millisecond

// skeleton renders row-shaped loading placeholders with a moving
// highlight band.
type skeleton struct {
	frame  int
	active bool
}

// widthPattern gives placeholder rows varied lengths, as a percentage of
// the available width, so the loading state reads as a list of rows
// rather than a solid block.
var widthPattern = []int{85, 60, 75, 55, 80, 65}

func (s *skeleton) start() tea.Cmd {
	s.active = true
	s.frame = 0
	return s.tick()
}

func (s *skeleton) stop() {
	s.active = false
}

func (s *skeleton) update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SkeletonTickMsg); ok && s.active {
		s.frame++
		return s.tick()
	}
	return nil
}

func (s *skeleton) tick() tea.Cmd {
	return tea.Tick(skeletonTickInterval, func(t time.Time) tea.Msg {
		return SkeletonTickMsg(t)
	})
}

// view renders rows placeholder lines. Each line leaves a checkbox-sized
// gutter so the skeleton lines up with real rows in a selectable list.
func (s *skeleton) view(width, rows, gutter int) string {
	if width < 10 {
		width = 10
	}
	const band = 5

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		pct := widthPattern[r%len(widthPattern)]
		barWidth := max(min((width-gutter)*pct/100, width-gutter), 4)
		highlight := (s.frame + r*3) % (barWidth + band)

		sb.WriteString(strings.Repeat(" ", gutter))
		for col := 0; col < barWidth; col++ {
			if col >= highlight-band && col < highlight {
				sb.WriteString(styles.Muted.Render("▒"))
			} else {
				sb.WriteString(styles.Subtle.Render("░"))
			}
		}
	}
	return sb.String()
}
