package discord

import (
	"testing"
)

func TestAdapterName(t *testing.T) {
	adapter := NewDiscordAdapter("test")
	if adapter.Name() != "discord" {
		t.Errorf("Expected discord, got %s", adapter.Name())
	}
}

func TestAdapterDisabledWithoutToken(t *testing.T) {
	adapter := NewDiscordAdapter("")
	if adapter.IsEnabled() {
		t.Error("Expected adapter without token to be disabled")
	}
}
