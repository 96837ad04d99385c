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
)

type stopOptions struct {
	timeout       int
	removeOrphans bool
}

// stopCommand stops running containers declared by the compose file.
func stopCommand(p *projectOptions) *cobra.Command {
	opts := stopOptions{}
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop running containers declared by the compose file",
		RunE: Adapt(p, func(ctx context.Context, o *projectOptions, args []string) error {
			return runStop(ctx, o, opts)
		}),
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.timeout, "timeout", "t", 5, "Shutdown timeout in seconds")
	flags.BoolVar(&opts.removeOrphans, "remove-orphans", false, "Remove containers for services not defined in the Compose file")
	return cmd
}

func runStop(ctx context.Context, o *projectOptions, opts stopOptions) error {
	controller, warnings, err := o.loadController(ctx)
	if err != nil {
		return err
	}
	logWarnings(warnings)

	plan := controller.PlanStop()
	plan = resolveOrphans(controller, plan, opts.removeOrphans)

	timeout := time.Duration(opts.timeout) * time.Second
	return applyPlan(ctx, controller, o.writer(), plan, timeout)
}
