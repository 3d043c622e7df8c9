package system

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/logger"
)

type DebugCmd struct {
	Path DebugPathCmd `cmd:"" help:"Show storage path."`
	Keys DebugKeysCmd `cmd:"" help:"List stored keys."`
	Dump DebugDumpCmd `cmd:"" help:"Dump the raw value of a stored key as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	if ctx.Backups != nil {
		output["backups"] = ctx.Backups.GetBackupDir()
	}
	if path := logger.Path(); path != "" {
		output["log"] = path
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ctx.Println(k)
	}
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key to dump (habits, logs, microwins, microwin_logs, plans, journal)."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	raw, ok, err := ctx.Store.Get(cmd.Key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.Key, err)
	}
	if !ok {
		return fmt.Errorf("key not found: %s", cmd.Key)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Malformed values are shown as stored
		ctx.Println(string(raw))
		return nil
	}
	ctx.Println(pretty.String())
	return nil
}
