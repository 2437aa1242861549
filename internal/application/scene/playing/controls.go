package playing

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
)

// Controls is everything the scene reads from the player in one update
type Controls struct {
	Input   system.Input
	Pause   bool // toggle pause
	Restart bool // start a new game after the current one ended
	Save    bool // flush the recording to disk
}

// Controller samples player controls once per update
type Controller interface {
	Poll() Controls
}

var moveKeys = []struct {
	key ebiten.Key
	dir entity.Direction
}{
	{ebiten.KeyArrowUp, entity.DirUp},
	{ebiten.KeyW, entity.DirUp},
	{ebiten.KeyArrowDown, entity.DirDown},
	{ebiten.KeyS, entity.DirDown},
	{ebiten.KeyArrowLeft, entity.DirLeft},
	{ebiten.KeyA, entity.DirLeft},
	{ebiten.KeyArrowRight, entity.DirRight},
	{ebiten.KeyD, entity.DirRight},
}

// Keyboard reads controls from the ebiten keyboard state
type Keyboard struct{}

// Poll implements Controller.
// Held direction keys are ordered by press time so the most recent press wins.
func (Keyboard) Poll() Controls {
	type heldKey struct {
		dir      entity.Direction
		duration int
	}

	var held []heldKey
	for _, mk := range moveKeys {
		if d := inpututil.KeyPressDuration(mk.key); d > 0 {
			held = append(held, heldKey{dir: mk.dir, duration: d})
		}
	}
	slices.SortStableFunc(held, func(a, b heldKey) int {
		return cmp.Compare(b.duration, a.duration)
	})

	dirs := make([]entity.Direction, len(held))
	for i, h := range held {
		dirs[i] = h.dir
	}

	in := system.Input{
		Move:   system.ResolveMove(dirs...),
		Attack: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ),
	}
	restart := inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	return Controls{
		Input:   in,
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: restart,
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}
