// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/base/logx"
	"cogentcore.org/deepinspect/host/scene"
	"cogentcore.org/deepinspect/host/scene/demo"
	"cogentcore.org/deepinspect/inspect"
	"cogentcore.org/deepinspect/surface"
	"cogentcore.org/deepinspect/surface/text"
	"cogentcore.org/deepinspect/surface/tui"
	"cogentcore.org/deepinspect/types"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the flags shared by all commands.
type options struct {
	config string
	debug  bool
	vv     bool
	v      bool
	q      bool
	color  bool

	settings *inspect.Settings
}

// output returns the options of text surfaces, dropping color when disabled.
func (o *options) output() []termenv.OutputOption {
	if o.color {
		return nil
	}
	return []termenv.OutputOption{termenv.WithProfile(termenv.Ascii)}
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.config, "config", inspect.DefaultSettingsFile(), "path to the TOML settings file")
	fs.BoolVar(&o.debug, "debug", false, "log rendering diagnostics as warnings")
	fs.BoolVar(&o.vv, "vv", false, "show debug messages")
	fs.BoolVarP(&o.v, "verbose", "v", false, "show info messages")
	fs.BoolVarP(&o.q, "quiet", "q", false, "only show errors")
	fs.BoolVar(&o.color, "color", true, "use colored output")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "deepinspect",
		Short:         "Inspect and edit runtime objects through reflection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
			logx.UseColor = o.color
			logx.SetDefaultLogger()
			s, err := inspect.LoadSettings(o.config)
			if err != nil {
				return fmt.Errorf("loading settings from %s: %w", o.config, err)
			}
			if o.debug {
				s.Debug = true
			}
			o.settings = s
			slog.Debug("settings loaded", "file", o.config, "cmd", cmd.Name())
			return nil
		},
	}
	o.addFlags(root.PersistentFlags())

	root.AddCommand(newDumpCmd(o), newTUICmd(o), newStaticCmd(o), newTypesCmd(), newSettingsCmd(o))
	return root
}

// nodes returns the nodes of the scene with the given names,
// or all of its nodes if there are no names.
func nodes(sc *scene.Scene, names []string) ([]*scene.Node, error) {
	if len(names) == 0 {
		return sc.Nodes, nil
	}
	var res []*scene.Node
	for _, name := range names {
		n := sc.FindByName(name)
		if n == nil {
			return nil, errors.Errorf("scene %s has no node named %q", sc.Name, name)
		}
		res = append(res, n)
	}
	return res, nil
}

func newDumpCmd(o *options) *cobra.Command {
	expand := false
	cmd := &cobra.Command{
		Use:   "dump [node...]",
		Short: "Print the components of the demo scene nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := demo.New()
			ns, err := nodes(sc, args)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), o, sc, ns, expand)
		},
	}
	cmd.Flags().BoolVarP(&expand, "expand", "e", false, "open every foldout")
	return cmd
}

func dump(w io.Writer, o *options, sc *scene.Scene, ns []*scene.Node, expand bool) error {
	ts := text.New(w, o.output()...)
	ts.ExpandAll = expand
	in := inspect.New(ts, sc, o.settings)
	for _, n := range ns {
		ts.Label(n.Name(), 0)
		ts.BeginBox()
		in.Node(n)
		ts.EndBox()
	}
	return nil
}

func newTUICmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [node...]",
		Short: "Inspect the demo scene interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := demo.New()
			ns, err := nodes(sc, args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			var reloaded atomic.Pointer[inspect.Settings]
			if err := inspect.WatchSettings(ctx, o.config, reloaded.Store); err != nil {
				slog.Info("not watching settings", "file", o.config, "err", err)
			}
			in := inspect.New(nil, sc, o.settings)
			open := map[*scene.Node]bool{}
			for _, n := range ns {
				open[n] = len(ns) == 1
			}
			return tui.Run("deepinspect: "+sc.Name, func(s surface.Surface) {
				if fresh := reloaded.Swap(nil); fresh != nil {
					in.SetSettings(fresh)
				}
				in.SetSurface(s)
				for _, n := range ns {
					s.BeginBox()
					open[n] = s.Foldout(n.Name(), open[n], 0)
					if open[n] {
						in.Node(n)
					}
					s.EndBox()
				}
			})
		},
	}
}

func newStaticCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "static <type>",
		Short: "Print the registered statics of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := text.New(cmd.OutOrStdout(), o.output()...)
			si := inspect.NewStaticInspector(inspect.New(ts, nil, o.settings))
			if _, err := si.Inspect(args[0]); err != nil {
				return errors.New(si.Message)
			}
			si.Entry = args[0]
			si.Draw()
			return nil
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the types with registered statics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, tp := range types.Types.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d statics\n", tp.ShortName(), tp.NumStatics())
			}
			return nil
		},
	}
}

func newSettingsCmd(o *options) *cobra.Command {
	save := false
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the current settings, or save them to the settings file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if save {
				if err := o.settings.Save(o.config); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "saved", o.config)
				return nil
			}
			b, err := toml.Marshal(o.settings)
			if err != nil {
				return errors.Wrap(err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the settings to the settings file")
	return cmd
}
