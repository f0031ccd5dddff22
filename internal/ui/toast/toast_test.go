package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestToastRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Toast{}, 80, now)

	assert.Equal(t, "", result, "Empty toast list should return empty string")
}

func TestToastRenderer_Render_SingleToast(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{types.NewToast(types.ToastSuccess, "Loaded 12 tasks", now)}

	result := renderer.Render(toasts, 80, now)

	assert.NotEmpty(t, result, "Should render toast")
	assert.Contains(t, result, "✓ Loaded 12 tasks", "Should contain toast message")
}

func TestToastRenderer_Render_SkipsExpired(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		types.NewToast(types.ToastInfo, "Old news", now.Add(-time.Minute)),
		types.NewToast(types.ToastError, "Still here", now),
	}

	result := renderer.Render(toasts, 80, now)

	assert.NotContains(t, result, "Old news")
	assert.Contains(t, result, "Still here")
	assert.Empty(t, renderer.Render(toasts, 80, now.Add(time.Hour)))
}

func TestToastRenderer_Render_MultipleToasts(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		types.NewToast(types.ToastInfo, "First toast", now),
		types.NewToast(types.ToastSuccess, "Second toast", now),
		types.NewToast(types.ToastWarning, "Third toast", now),
		types.NewToast(types.ToastError, "Fourth toast", now),
	}

	result := renderer.Render(toasts, 80, now)

	// Only the newest three are stacked
	assert.NotContains(t, result, "First toast")
	assert.Contains(t, result, "Second toast", "Should contain second toast")
	assert.Contains(t, result, "Third toast", "Should contain third toast")
	assert.Contains(t, result, "Fourth toast", "Should contain fourth toast")

	// Check that toasts are stacked (multiple lines)
	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 1, "Multiple toasts should create multiple lines")
}

func TestToastRenderer_styleForLevel(t *testing.T) {
	s := styles.New()
	renderer := New(s)

	assert.Equal(t, s.ToastInfo.GetBorderTopForeground(), renderer.styleForLevel(types.ToastInfo).GetBorderTopForeground())
	assert.Equal(t, s.ToastSuccess.GetBorderTopForeground(), renderer.styleForLevel(types.ToastSuccess).GetBorderTopForeground())
	assert.Equal(t, s.ToastWarning.GetBorderTopForeground(), renderer.styleForLevel(types.ToastWarning).GetBorderTopForeground())
	assert.Equal(t, s.ToastError.GetBorderTopForeground(), renderer.styleForLevel(types.ToastError).GetBorderTopForeground())
}
