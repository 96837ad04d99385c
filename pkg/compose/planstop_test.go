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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

func TestPlanStopStopsOnlyRunningDeclaredContainers(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	backend.containers[spec.Name] = model.Container{Id: "id1", Name: spec.Name, Status: model.StatusRunning}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan := c.PlanStop()
	assert.Equal(t, []api.PlannedOperation{{Name: spec.Name, Op: api.OpStop}}, plan)
}

func TestPlanStopSkipsNonRunningDeclaredContainers(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	backend.containers[spec.Name] = model.Container{Id: "id1", Name: spec.Name, Status: model.StatusExited}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan := c.PlanStop()
	assert.Empty(t, plan)
}

func TestPlanStopSkipsUndeclaredContainers(t *testing.T) {
	backend := newFakeBackend()
	backend.containers["proj_legacy_0"] = model.Container{Id: "id1", Name: "proj_legacy_0", Status: model.StatusRunning}
	c := newTestController(backend, model.Composition{})

	plan := c.PlanStop()
	assert.Empty(t, plan)
}

func TestPlanStopSkipsMissingDeclaredContainers(t *testing.T) {
	backend := newFakeBackend()
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{webSpec()}})

	plan := c.PlanStop()
	assert.Empty(t, plan)
}
