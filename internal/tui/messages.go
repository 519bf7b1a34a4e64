// Package tui holds what the terminal programs share: styles and the bridge
// from style store notifications into a bubbletea program.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/store"
)

// StoreChangedMsg is delivered when the style store has been rewritten.
type StoreChangedMsg struct {
	Change store.Change
}

// WatchStore forwards store changes to send. send runs on the writer's
// goroutine, so a program that writes from Update must not block in it.
// Unsubscribe before the program exits.
func WatchStore(st *store.Store, send func(tea.Msg)) (ports.Subscription, error) {
	return st.Subscribe(func(_ context.Context, change store.Change) {
		send(StoreChangedMsg{Change: change})
	})
}
