package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/cmdscripts"
	"github.com/reusee/propscript/configs"
	"github.com/reusee/propscript/debugs"
	"github.com/reusee/propscript/engines"
	"github.com/reusee/propscript/faults"
	"github.com/reusee/propscript/logs"
	"github.com/reusee/propscript/modes"
	"github.com/reusee/propscript/props"
	"github.com/reusee/propscript/storages"
	"github.com/reusee/propscript/targets"
	"github.com/reusee/propscript/vars"
)

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}

func main() {
	ctx := context.Background()

	var scriptPath string
	var commandMode, replaceMode, debugTap bool
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-c", "-commands":
			commandMode = true
		case "-replace":
			replaceMode = true
		case "-debug":
			debugTap = true
			logs.SetLevel(slog.LevelDebug)
		default:
			scriptPath = arg
		}
	}

	var input io.Reader = os.Stdin
	name := "stdin"
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		ce(err)
		defer f.Close()
		input = f
		name = scriptPath
	}
	content, err := io.ReadAll(input)
	ce(err)
	script := string(content)
	ctx = logs.WithScript(ctx, logs.Script(name))

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() storages.Store {
			dir, err := os.UserConfigDir()
			if err != nil {
				return storages.NewMemory()
			}
			return storages.NewFile(filepath.Join(dir, "propscript"))
		},
	)

	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		newEngine engines.NewEngine,
		sink faults.Sink,
		tap debugs.Tap,
	) {

		logger.DebugContext(ctx, "input",
			"name", name,
			"len", len(script),
		)

		if commandMode {
			env := cmdscripts.Env{}
			interp := cmdscripts.NewInterpreter(cmdscripts.Builtins(), sink)
			interp.Run(ctx, env, script)
			for key, value := range env {
				fmt.Printf("%s = %v\n", key, value)
			}
			return
		}

		terminal := targets.NewTerm(os.Stdout)
		table := targets.Table{
			"main": terminal,
		}
		engine, err := newEngine(ctx, engines.Config{
			TargetID: vars.FirstNonZero(
				configs.First[string](loader, "target"),
				"main",
			),
			Resolver: table.Resolve,
		})
		ce(err)

		policy := props.PolicyMerge
		if replaceMode || configs.First[string](loader, "merge_policy") == "replace" {
			policy = props.PolicyReplace
		}
		engine.Update(ctx, script, policy)
		terminal.Draw()

		if debugTap {
			tap(ctx, name, engine.Tree())
		}
	})
}
