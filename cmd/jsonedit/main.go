package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/kevinwang15/jsonedit"
)

func fileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Path to the JSON document",
		Required: true,
	}
}

func runGet(_ context.Context, cmd *cli.Command) error {
	store := &jsonedit.FileStore{Path: cmd.String("file")}
	doc, err := store.Contents()
	if err != nil {
		return err
	}
	path, err := jsonedit.ParsePath(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	val, err := jsonedit.Get(doc, path)
	if err != nil {
		return err
	}
	switch out := cmd.String("output"); out {
	case "json":
		fmt.Printf("%s\n", val.Encode())
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(val.YAMLNode()); err != nil {
			return err
		}
		_ = enc.Close()
		fmt.Print(buf.String())
	default:
		return fmt.Errorf("unknown output format %q", out)
	}
	return nil
}

func runSet(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("usage: set -f FILE PATH VALUE")
	}
	path, err := jsonedit.ParsePath(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	editor := &jsonedit.Editor{
		Store:  &jsonedit.FileStore{Path: cmd.String("file")},
		Notify: &jsonedit.SlogNotifier{Log: slog.Default()},
	}
	return editor.Save(jsonedit.Node{Path: path}, []byte(cmd.Args().Get(1)))
}

func runPatch(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: patch -f FILE PATCH_FILE")
	}
	raw, err := os.ReadFile(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	patch, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return fmt.Errorf("failed to decode patch: %w", err)
	}
	store := &jsonedit.FileStore{Path: cmd.String("file")}
	doc, err := store.Contents()
	if err != nil {
		return err
	}
	out, err := jsonedit.ApplyPatch(doc, patch)
	if err != nil {
		return err
	}
	return store.SetContents(out)
}

func runLocate(_ context.Context, cmd *cli.Command) error {
	path, err := jsonedit.ParsePath(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Println(jsonedit.Format(path))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "jsonedit",
		Usage: "Inspect and edit single values of a JSON document by path",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print the value at a path",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output format: json or yaml",
						Value:   "json",
					},
				},
				Action: runGet,
			},
			{
				Name:      "set",
				Usage:     "Write a JSON value into the document at a path, creating missing containers",
				ArgsUsage: "PATH VALUE",
				Flags:     []cli.Flag{fileFlag()},
				Action:    runSet,
			},
			{
				Name:      "patch",
				Usage:     "Apply an RFC 6902 patch file to the document",
				ArgsUsage: "PATCH_FILE",
				Flags:     []cli.Flag{fileFlag()},
				Action:    runPatch,
			},
			{
				Name:      "locate",
				Usage:     "Print the canonical locator for a path expression",
				ArgsUsage: "PATH",
				Action:    runLocate,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("jsonedit error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
