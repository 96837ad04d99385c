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
	"fmt"
	"sort"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

// PlanUp returns the concatenation of two disjoint streams: Stream A
// classifies each declared ContainerSpec against the observation set;
// Stream B catches replicas that still exist, in any status, under a
// service that's still declared, but whose own name fell out of the
// declaration when replicas were scaled down. Orphans (service no longer declared at all)
// are deliberately not emitted here - see FindOrphans.
func (c *Controller) PlanUp() ([]api.PlannedOperation, error) {
	declaredNames := make(map[model.ContainerName]bool, len(c.composition.Containers))
	var plan []api.PlannedOperation

	for _, spec := range c.composition.Containers {
		declaredNames[spec.Name] = true

		observed, present := c.observed[spec.Name]
		if !present {
			plan = append(plan, api.PlannedOperation{Name: spec.Name, Op: api.OpCreate})
			continue
		}

		hash, err := SpecHash(spec)
		if err != nil {
			return nil, fmt.Errorf("hashing spec for %s: %w", spec.Name, err)
		}
		if observed.Labels[api.ConfigHashLabel] != hash {
			// hash mismatch dominates status: a mismatched Running container
			// is still Recreate.
			plan = append(plan, api.PlannedOperation{Name: spec.Name, Op: api.OpRecreate})
			continue
		}

		switch observed.Status {
		case model.StatusConfigured, model.StatusExited:
			plan = append(plan, api.PlannedOperation{Name: spec.Name, Op: api.OpStart})
		case model.StatusRunning:
			// already converged, nothing to do
		case model.StatusUnknown:
			plan = append(plan, api.PlannedOperation{Name: spec.Name, Op: api.OpRecreate})
		}
	}

	declaredServices := make(map[string]bool, len(c.composition.Containers))
	for _, name := range c.composition.ServiceNames() {
		declaredServices[name] = true
	}

	var scaledDown []api.PlannedOperation
	for name, container := range c.observed {
		if declaredNames[name] {
			continue
		}
		service, ok := container.Labels[api.ServiceLabel]
		if ok && declaredServices[service] {
			scaledDown = append(scaledDown, api.PlannedOperation{Name: name, Op: api.OpRemove})
		}
	}
	sort.Slice(scaledDown, func(i, j int) bool { return scaledDown[i].Name < scaledDown[j].Name })

	return append(plan, scaledDown...), nil
}
