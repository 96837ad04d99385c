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

	"github.com/spf13/cobra"

	"github.com/podcompose/podcompose/pkg/api"
)

type buildOptions struct {
	pull bool
}

// buildCommand builds every declared build image. --pull selects the pull
// policy handed to BuildImages, which does not act on it: base images are
// not refreshed before building.
func buildCommand(p *projectOptions) *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build images declared by the compose file",
		RunE: Adapt(p, func(ctx context.Context, o *projectOptions, args []string) error {
			return runBuild(ctx, o, opts)
		}),
	}
	cmd.Flags().BoolVar(&opts.pull, "pull", false, "Select the always-pull policy for the build (base images are not refreshed)")
	return cmd
}

func runBuild(ctx context.Context, o *projectOptions, opts buildOptions) error {
	controller, warnings, err := o.loadController(ctx)
	if err != nil {
		return err
	}
	logWarnings(warnings)

	pullPolicy := api.PullIfNotPresent
	if opts.pull {
		pullPolicy = api.PullAlways
	}

	w := o.writer()
	w.TailMsgf("Building images")
	if err := controller.BuildImages(ctx, api.BuildAlways, pullPolicy); err != nil {
		return err
	}
	w.TailMsgf("Built images")
	return nil
}
