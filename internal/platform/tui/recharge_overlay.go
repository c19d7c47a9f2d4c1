package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geo-shooter/internal/recharge"
)

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14")).
				Bold(true)

	overlayLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overlayErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	overlayOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	overlayActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// rechargeOverlay is the coin recharge form shown on top of the game.
type rechargeOverlay struct {
	username   textinput.Model
	orderID    textinput.Model
	focusOrder bool
	submitting bool
	errMsg     string
	okMsg      string
}

func newRechargeOverlay() *rechargeOverlay {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 20
	username.Width = 28
	username.Focus()

	orderID := textinput.New()
	orderID.Placeholder = "order id (ctrl+g to generate)"
	orderID.CharLimit = 64
	orderID.Width = 28

	return &rechargeOverlay{
		username: username,
		orderID:  orderID,
	}
}

// wantsClose reports whether the key should dismiss the overlay.
func (o *rechargeOverlay) wantsClose(msg tea.KeyMsg) bool {
	if o.submitting {
		return false
	}
	return msg.String() == "esc"
}

// handleKey processes a key press while the overlay is open.
func (o *rechargeOverlay) handleKey(msg tea.KeyMsg, client *recharge.Client) (*rechargeOverlay, tea.Cmd) {
	if o.submitting {
		return o, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		o.focusOrder = !o.focusOrder
		if o.focusOrder {
			o.username.Blur()
			return o, o.orderID.Focus()
		}
		o.orderID.Blur()
		return o, o.username.Focus()

	case "ctrl+g":
		o.orderID.SetValue(recharge.NewOrderID())
		return o, nil

	case "enter":
		o.errMsg = ""
		o.okMsg = ""
		if err := client.Submit(o.username.Value(), o.orderID.Value()); err != nil {
			o.errMsg = strings.TrimPrefix(err.Error(), "recharge: ")
			return o, nil
		}
		o.submitting = true
		return o, nil
	}

	var cmd tea.Cmd
	if o.focusOrder {
		o.orderID, cmd = o.orderID.Update(msg)
	} else {
		o.username, cmd = o.username.Update(msg)
	}
	return o, cmd
}

// update forwards non-key messages, so the cursor keeps blinking.
func (o *rechargeOverlay) update(msg tea.Msg) (*rechargeOverlay, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	o.username, cmd = o.username.Update(msg)
	cmds = append(cmds, cmd)
	o.orderID, cmd = o.orderID.Update(msg)
	cmds = append(cmds, cmd)
	return o, tea.Batch(cmds...)
}

// setResult records the settled order outcome and unlocks the form.
func (o *rechargeOverlay) setResult(res recharge.Result) {
	o.submitting = false
	if res.Success {
		o.okMsg = res.Message
		o.orderID.SetValue("")
	} else {
		o.errMsg = res.Message
	}
}

// composite draws the overlay box centered over the rendered game view.
func (o *rechargeOverlay) composite(view string, width, height int) string {
	box := o.render()
	overlay := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)

	// Splice the overlay lines over the middle of the game view.
	viewLines := strings.Split(view, "\n")
	overlayLines := strings.Split(overlay, "\n")
	for i, line := range overlayLines {
		if i >= len(viewLines) {
			break
		}
		if strings.TrimSpace(line) != "" {
			viewLines[i] = line
		}
	}
	return strings.Join(viewLines, "\n")
}

func (o *rechargeOverlay) render() string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render("RECHARGE"))
	b.WriteString("\n\n")

	userLabel := overlayLabelStyle
	orderLabel := overlayLabelStyle
	if o.focusOrder {
		orderLabel = overlayActiveStyle
	} else {
		userLabel = overlayActiveStyle
	}

	b.WriteString(userLabel.Render("Username"))
	b.WriteString("\n")
	b.WriteString(o.username.View())
	b.WriteString("\n\n")
	b.WriteString(orderLabel.Render("Order ID"))
	b.WriteString("\n")
	b.WriteString(o.orderID.View())
	b.WriteString("\n\n")

	switch {
	case o.submitting:
		b.WriteString(overlayLabelStyle.Render("Submitting..."))
	case o.errMsg != "":
		b.WriteString(overlayErrorStyle.Render(o.errMsg))
	case o.okMsg != "":
		b.WriteString(overlayOKStyle.Render(o.okMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(overlayHelpStyle.Render("tab: switch  enter: submit  esc: close"))

	return overlayBoxStyle.Render(b.String())
}
