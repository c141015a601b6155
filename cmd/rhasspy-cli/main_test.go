package main

import (
	"testing"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"version", "restart", "train-profile",
		"text-to-intent", "text-to-speech", "speech-to-text", "stream-to-text",
		"wakeup", "say",
		"get-sentences", "set-sentences",
		"get-custom-words", "set-custom-words",
		"get-slots", "set-slots",
		"get-profile", "set-profile",
		"lookup",
	}

	registered := make(map[string]bool)
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("sub-command %q not registered", name)
		}
	}
}

func TestNewRootCmd_PersistentFlags(t *testing.T) {
	root := NewRootCmd()

	urlFlag := root.PersistentFlags().Lookup("api-url")
	if urlFlag == nil {
		t.Fatal("--api-url flag not registered")
	}
	if urlFlag.DefValue == "" {
		t.Fatal("--api-url has no default")
	}
	if root.PersistentFlags().Lookup("debug") == nil {
		t.Fatal("--debug flag not registered")
	}
}
