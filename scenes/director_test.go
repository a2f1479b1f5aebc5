package scenes

import (
	"fmt"
	"testing"

	cfg "github.com/automoto/skyrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	calls []string
}

func (f *fakeSession) PauseGame() { f.calls = append(f.calls, "pause") }
func (f *fakeSession) ToggleMouseControls(visible bool) {
	f.calls = append(f.calls, fmt.Sprintf("mouse:%t", visible))
}
func (f *fakeSession) SetFogDensity(density float64) {
	f.calls = append(f.calls, fmt.Sprintf("fog:%.1f", density))
}
func (f *fakeSession) Update()                   {}
func (f *fakeSession) Draw(screen *ebiten.Image) {}

func newTestDirector() (*Director, *[]*fakeSession) {
	var created []*fakeSession
	d := NewDirector(func() GameSession {
		s := &fakeSession{}
		created = append(created, s)
		return s
	})
	return d, &created
}

func TestDirectorMainMenuEscapeQuits(t *testing.T) {
	d, created := newTestDirector()

	assert.Equal(t, cfg.StateMainMenu, d.State())
	d.Escape()

	assert.Equal(t, cfg.StateQuit, d.State())
	assert.True(t, d.Done())
	assert.Empty(t, *created)
}

func TestDirectorEndGame(t *testing.T) {
	d, _ := newTestDirector()

	d.EndGame()
	assert.True(t, d.Done())
}

func TestDirectorCredits(t *testing.T) {
	d, _ := newTestDirector()

	d.ShowCredits()
	assert.Equal(t, cfg.StateCreditsMenu, d.State())

	d.Escape()
	assert.Equal(t, cfg.StateMainMenu, d.State())
}

func TestDirectorPauseAndResume(t *testing.T) {
	d, created := newTestDirector()

	d.StartGame()
	require.Len(t, *created, 1)
	s := (*created)[0]
	assert.Equal(t, cfg.StateInGame, d.State())
	assert.Empty(t, s.calls)

	d.Escape()
	assert.Equal(t, cfg.StateInGameMenu, d.State())
	assert.Equal(t, []string{"pause", "mouse:true", "fog:0.8"}, s.calls)

	d.ShowInGameCredits()
	assert.Equal(t, cfg.StateInGameCreditsMenu, d.State())

	d.Escape()
	assert.Equal(t, cfg.StateInGameMenu, d.State())

	s.calls = nil
	d.Escape()
	assert.Equal(t, cfg.StateInGame, d.State())
	assert.Equal(t, []string{"pause", "fog:0.0", "mouse:false"}, s.calls)
	assert.False(t, d.Done())
}

func TestDirectorIgnoresOutOfStateRequests(t *testing.T) {
	d, created := newTestDirector()

	d.ShowInGameCredits()
	assert.Equal(t, cfg.StateMainMenu, d.State())

	d.ShowCredits()
	d.StartGame()
	d.EndGame()
	assert.Equal(t, cfg.StateCreditsMenu, d.State())
	assert.Empty(t, *created)

	d.Escape()
	d.StartGame()
	d.StartGame()
	d.ShowCredits()
	d.EndGame()
	assert.Equal(t, cfg.StateInGame, d.State())
	assert.Len(t, *created, 1)
}

func TestDirectorUpdateTerminatesAfterQuit(t *testing.T) {
	d, _ := newTestDirector()
	d.EndGame()

	assert.ErrorIs(t, d.Update(), ebiten.Termination)
}
