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

package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

// Apply executes one planned operation against the backend. It does not
// refresh the observation snapshot: a Recreate or Remove resolves the
// container id from the snapshot taken at construction, so a world that
// changed since planning can surface as a backend error here. Re-running
// the controller, which re-observes, is the prescribed recovery.
func (c *Controller) Apply(ctx context.Context, name model.ContainerName, op api.Operation, timeout time.Duration) error {
	switch op {
	case api.OpCreate:
		return c.applyCreate(ctx, name)
	case api.OpRecreate:
		observed, ok := c.observed[name]
		if !ok {
			return fmt.Errorf("apply %s: %w", name, api.ErrContainerNotObserved)
		}
		if observed.Status == model.StatusRunning {
			if err := c.backend.StopContainer(ctx, observed.Id, timeout); err != nil {
				return fmt.Errorf("apply %s: %w", name, err)
			}
		}
		if err := c.backend.RemoveContainer(ctx, observed.Id, false); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		return c.applyCreate(ctx, name)
	case api.OpStart:
		observed, ok := c.observed[name]
		if !ok {
			return fmt.Errorf("apply %s: %w", name, api.ErrContainerNotObserved)
		}
		if err := c.backend.StartContainer(ctx, observed.Id); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		return nil
	case api.OpStop:
		observed, ok := c.observed[name]
		if !ok {
			return fmt.Errorf("apply %s: %w", name, api.ErrContainerNotObserved)
		}
		if err := c.backend.StopContainer(ctx, observed.Id, timeout); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		return nil
	case api.OpRemove:
		observed, ok := c.observed[name]
		if !ok {
			return fmt.Errorf("apply %s: %w", name, api.ErrContainerNotObserved)
		}
		if observed.Status == model.StatusRunning {
			if err := c.backend.StopContainer(ctx, observed.Id, timeout); err != nil {
				return fmt.Errorf("apply %s: %w", name, err)
			}
		}
		// remove_volumes is wired false unconditionally; see DESIGN.md's
		// open question on threading --volumes through to here.
		if err := c.backend.RemoveContainer(ctx, observed.Id, false); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		return nil
	default:
		return fmt.Errorf("apply %s: unknown operation %q", name, op)
	}
}

// applyCreate looks up the declared spec, injects the three system labels
// (computed over the spec before injection), and creates then starts the
// container. It backs both OpCreate and the second half of OpRecreate.
func (c *Controller) applyCreate(ctx context.Context, name model.ContainerName) error {
	spec, ok := c.composition.ContainerSpec(name)
	if !ok {
		return fmt.Errorf("apply %s: %w", name, api.ErrUnknownContainer)
	}

	hash, err := SpecHash(spec)
	if err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	spec.Labels = withSystemLabels(spec.Labels, c.projectName, spec.ServiceName, hash)

	id, err := c.backend.CreateContainer(ctx, spec)
	if err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	if err := c.backend.StartContainer(ctx, id); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	return nil
}

// withSystemLabels returns a copy of user labels with the three system
// labels added. The hash is computed over the spec before this call, so
// these labels never participate in the spec's identity.
func withSystemLabels(userLabels map[string]string, project, service, hash string) map[string]string {
	labels := make(map[string]string, len(userLabels)+3)
	for k, v := range userLabels {
		labels[k] = v
	}
	labels[api.ProjectLabel] = project
	labels[api.ServiceLabel] = service
	labels[api.ConfigHashLabel] = hash
	return labels
}
