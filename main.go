// Package main is the entry point for the shsat CLI.
package main

import (
	"github.com/huangsam/shsat/cmd"
	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/internal/history"
)

func main() {
	cmd.SetHistoryManager(history.Manager)
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	history.CloseHistory()
	if err != nil {
		contract.LogFatal("shsat failed", err)
	}
}
