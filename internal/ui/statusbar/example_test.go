package statusbar_test

import (
	"fmt"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/statusbar"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()

	// Create a status bar in normal mode with the window summary
	sb := statusbar.New(types.ModeNormal, 120, style).WithInfo("day · Jan 1 - Jan 30")

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	// For this example, we just verify it's not empty
	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleGetHints shows how to get hints for different modes
func ExampleGetHints() {
	fmt.Println(statusbar.GetHints(types.ModeGoto))
	// Output: g: first  e: last  t: today  s: selected  Esc: cancel
}
