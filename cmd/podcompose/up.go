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
	"time"

	"github.com/spf13/cobra"

	"github.com/podcompose/podcompose/pkg/api"
)

type upOptions struct {
	build         bool
	timeout       int
	removeOrphans bool
}

// upCommand pulls, optionally builds, then converges running containers
// onto the computed up-plan, folding in orphan handling.
func upCommand(p *projectOptions) *cobra.Command {
	opts := upOptions{}
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Pull, build and create containers to match the compose file",
		RunE: Adapt(p, func(ctx context.Context, o *projectOptions, args []string) error {
			return runUp(ctx, o, opts)
		}),
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.build, "build", false, "Build images before starting containers")
	flags.IntVarP(&opts.timeout, "timeout", "t", 5, "Shutdown timeout in seconds, used when up recreates a running container")
	flags.BoolVar(&opts.removeOrphans, "remove-orphans", false, "Remove containers for services not defined in the Compose file")
	return cmd
}

func runUp(ctx context.Context, o *projectOptions, opts upOptions) error {
	controller, warnings, err := o.loadController(ctx)
	if err != nil {
		return err
	}
	logWarnings(warnings)

	if err := controller.PullImages(ctx, api.PullIfNotPresent); err != nil {
		return err
	}
	if opts.build {
		if err := controller.BuildImages(ctx, api.BuildAlways, api.PullIfNotPresent); err != nil {
			return err
		}
	}

	plan, err := controller.PlanUp()
	if err != nil {
		return err
	}
	plan = resolveOrphans(controller, plan, opts.removeOrphans)

	timeout := time.Duration(opts.timeout) * time.Second
	return applyPlan(ctx, controller, o.writer(), plan, timeout)
}
