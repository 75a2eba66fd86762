package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestLoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &stubFeature{name: "voices", enabled: true}
	disabled := &stubFeature{name: "previews", enabled: false}

	mgr := NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(app)
	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	assert.Equal(t, []string{"voices"}, mgr.Enabled())
}

func TestLoadAllPropagatesError(t *testing.T) {
	app := fiber.New()

	broken := &stubFeature{name: "voices", enabled: true, loadErr: errors.New("boom")}

	mgr := NewManager()
	mgr.Register(broken)

	err := mgr.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "voices")
}
