/*
   Copyright 2020 Docker Compose CLI authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/docker/docker/client"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/podcompose/podcompose/pkg/compose"
	"github.com/podcompose/podcompose/pkg/loader"
	"github.com/podcompose/podcompose/pkg/progress"
)

// Command is the shape of a podcompose subcommand's business logic.
type Command func(ctx context.Context, opts *projectOptions, args []string) error

// Adapt wires fn into cobra, cancelling ctx on SIGINT/SIGTERM so a signal
// during a long pull or build leaves previously-applied operations in
// place rather than tearing anything down uncleanly.
func Adapt(o *projectOptions, fn Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
		go func() {
			<-sig
			cancel()
			signal.Stop(sig)
			close(sig)
		}()

		return fn(ctx, o, args)
	}
}

// projectOptions carries the flags shared by every subcommand: which
// compose file to load and whether to print progress.
type projectOptions struct {
	configPaths []string
	projectName string
	quiet       bool
}

func (o *projectOptions) addFlags(f *pflag.FlagSet) {
	f.StringArrayVarP(&o.configPaths, "file", "f", nil, "Compose configuration file")
	f.StringVarP(&o.projectName, "project-name", "p", "", "Project name")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress progress output")
}

// loadController discovers and parses the compose file, walking upward
// from cwd when no --file was given and then chdir'ing into the
// directory holding it so relative build contexts resolve the way a user
// invoking podcompose from that directory would expect. It then
// constructs a Controller against a real docker backend. Warnings about
// compose-file fields this system doesn't act on are returned rather
// than swallowed.
func (o *projectOptions) loadController(ctx context.Context) (*compose.Controller, []string, error) {
	projectName := o.projectName

	if len(o.configPaths) == 0 {
		configPath, discoveredName, err := loader.Discover()
		if err != nil {
			return nil, nil, err
		}
		if err := os.Chdir(filepath.Dir(configPath)); err != nil {
			return nil, nil, fmt.Errorf("chdir to compose file directory: %w", err)
		}
		if projectName == "" {
			projectName = discoveredName
		}
	}

	composition, warnings, err := loader.LoadProject(ctx, loader.Options{
		ConfigPaths: o.configPaths,
		WorkingDir:  ".",
		ProjectName: projectName,
	})
	if err != nil {
		return nil, nil, err
	}

	apiClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to container runtime: %w", err)
	}
	backend := compose.NewDockerBackend(apiClient)

	name := projectName
	if name == "" {
		names := composition.ServiceNames()
		if len(names) == 0 {
			return nil, nil, fmt.Errorf("project declares no services, cannot derive a project name")
		}
		name = names[0]
	}

	controller, err := compose.NewController(ctx, name, backend, composition)
	if err != nil {
		return nil, nil, err
	}
	return controller, warnings, nil
}

func (o *projectOptions) writer() progress.Writer {
	if o.quiet {
		return progress.NewWriter(io.Discard)
	}
	return progress.NewWriter(os.Stdout)
}

// rootCommand assembles the podcompose CLI: up, down, stop and build.
func rootCommand() *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:           "podcompose",
		Short:         "A compose-compatible container orchestrator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		upCommand(opts),
		downCommand(opts),
		stopCommand(opts),
		buildCommand(opts),
	)

	return cmd
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{})
}
