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
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/compose"
	"github.com/podcompose/podcompose/pkg/model"
	"github.com/podcompose/podcompose/pkg/progress"
	"github.com/podcompose/podcompose/pkg/utils"
)

// operationEvents maps each applier operation onto the working/done event
// pair it reports while running, the plain-text equivalent of a
// multi-line TTY spinner row.
var operationEvents = map[api.Operation]struct{ working, done func(string) progress.Event }{
	api.OpCreate:   {progress.CreatingEvent, progress.CreatedEvent},
	api.OpRecreate: {progress.RecreatingEvent, progress.RecreatedEvent},
	api.OpStart:    {progress.StartingEvent, progress.StartedEvent},
	api.OpStop:     {progress.StoppingEvent, progress.StoppedEvent},
	api.OpRemove:   {progress.RemovingEvent, progress.RemovedEvent},
}

// applyPlan executes plan sequentially against c, reporting a
// working/done event pair per operation through w. It stops at the first
// error: previously-applied operations are not rolled back, and
// re-running podcompose is the prescribed recovery once the failure is
// addressed.
func applyPlan(ctx context.Context, c *compose.Controller, w progress.Writer, plan []api.PlannedOperation, timeout time.Duration) error {
	for _, op := range plan {
		events := operationEvents[op.Op]
		w.Event(events.working(string(op.Name)))
		if err := c.Apply(ctx, op.Name, op.Op, timeout); err != nil {
			w.Event(progress.ErrorEvent(string(op.Name), err.Error()))
			return err
		}
		w.Event(events.done(string(op.Name)))
	}
	return nil
}

// resolveOrphans folds FindOrphans into plan according to removeOrphans:
// when set, every orphan becomes a Remove operation appended to plan, past
// any names already scheduled there; otherwise orphans are reported to
// stderr as an advisory and left untouched. The membership set built from
// plan guards against scheduling an orphan twice even though the planner
// already keeps the two sets disjoint. COMPOSE_REMOVE_ORPHANS enables the
// same behavior without passing the flag on every invocation.
func resolveOrphans(c *compose.Controller, plan []api.PlannedOperation, removeOrphans bool) []api.PlannedOperation {
	removeOrphans = removeOrphans || utils.StringToBool(os.Getenv("COMPOSE_REMOVE_ORPHANS"))

	orphans := c.FindOrphans()
	if len(orphans) == 0 {
		return plan
	}

	if !removeOrphans {
		names := make([]string, len(orphans))
		for i, name := range orphans {
			names[i] = string(name)
		}
		fmt.Fprintf(os.Stderr, "Found orphan containers (%v) for this project. If you removed or renamed this service in your compose file, you can run this command with the --remove-orphans flag to clean it up.\n", names)
		return plan
	}

	scheduled := utils.NewSet[model.ContainerName]()
	for _, op := range plan {
		scheduled.Add(op.Name)
	}
	for _, name := range orphans {
		if scheduled.Has(name) {
			continue
		}
		plan = append(plan, api.PlannedOperation{Name: name, Op: api.OpRemove})
	}
	return plan
}

// logWarnings prints compose-file warnings to stderr through logrus, the
// same sink used for non-fatal operator diagnostics elsewhere in this command.
func logWarnings(warnings []string) {
	for _, w := range warnings {
		logrus.Warn(w)
	}
}
